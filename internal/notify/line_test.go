package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineNotifier_SendPriceAlert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		alert        func() AlertPayload
		defaultTo    string
		statusCode   int
		wantErr      error
		errMsg       string
		wantTo       string
		wantMessages int
	}{
		{
			name:         "text and image",
			alert:        func() AlertPayload { return testAlert(0) },
			statusCode:   http.StatusOK,
			wantTo:       "U1234567890",
			wantMessages: 2,
		},
		{
			name: "text only falls back to default recipient",
			alert: func() AlertPayload {
				a := testAlert(0)
				a.Recipient = ""
				a.ImageURL = ""
				return a
			},
			defaultTo:    "Udefault",
			statusCode:   http.StatusOK,
			wantTo:       "Udefault",
			wantMessages: 1,
		},
		{
			name: "no recipient",
			alert: func() AlertPayload {
				a := testAlert(0)
				a.Recipient = ""
				return a
			},
			wantErr: ErrNoRecipient,
		},
		{
			name:       "non-200 is a failure",
			alert:      func() AlertPayload { return testAlert(0) },
			statusCode: http.StatusAccepted,
			errMsg:     "line returned 202",
		},
		{
			name:       "unauthorized",
			alert:      func() AlertPayload { return testAlert(0) },
			statusCode: http.StatusUnauthorized,
			errMsg:     "line returned 401",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var received linePushPayload
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
				w.WriteHeader(tt.statusCode)
			}))
			defer srv.Close()

			n := NewLineNotifier("test-token",
				WithLinePushURL(srv.URL),
				WithDefaultRecipient(tt.defaultTo),
			)
			alert := tt.alert()
			err := n.SendPriceAlert(context.Background(), &alert)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				return
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTo, received.To)
			require.Len(t, received.Messages, tt.wantMessages)
			assert.Equal(t, "text", received.Messages[0].Type)
			assert.Contains(t, received.Messages[0].Text, "Card: 海燕")
			if tt.wantMessages == 2 {
				assert.Equal(t, "image", received.Messages[1].Type)
				assert.Equal(t, alert.ImageURL, received.Messages[1].OriginalContentURL)
				assert.Equal(t, alert.ImageURL, received.Messages[1].PreviewImageURL)
			}
		})
	}
}

func TestLineNotifier_NetworkError(t *testing.T) {
	t.Parallel()

	n := NewLineNotifier("t", WithLinePushURL("http://127.0.0.1:1"))
	alert := testAlert(0)
	err := n.SendPriceAlert(context.Background(), &alert)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending line request")
}

func TestWithLineHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	n := NewLineNotifier("t", WithLineHTTPClient(custom))
	assert.Same(t, custom, n.client)
}
