package rules

func alert(name, expr, forDur, severity, summary, description string) Rule {
	return Rule{
		Alert:  name,
		Expr:   expr,
		For:    forDur,
		Labels: map[string]string{"severity": severity},
		Annotations: map[string]string{
			"summary":     summary,
			"description": description,
		},
	}
}

// AlertRules returns a PrometheusRule CR containing alert rules for
// kapaipai-tracker operational monitoring.
func AlertRules() PrometheusRule {
	return newRule("kpp-alerts", "kpp-alerts", []Rule{
		alert("KppDown",
			`absent(up{job="kapaipai-tracker"})`, "2m", "critical",
			"Kapaipai tracker is down",
			"The kapaipai-tracker job has been absent for more than 2 minutes."),
		alert("KppReadinessDown",
			`kpp_readyz_up == 0`, "2m", "critical",
			"Kapaipai tracker readiness check is failing",
			"The database has been unreachable from the readiness probe for more than 2 minutes."),
		alert("KppHighErrorRate",
			`kpp:http_errors:rate5m / kpp:http_requests:rate5m > 0.05`, "5m", "warning",
			"High HTTP error rate on kapaipai tracker",
			"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
		alert("KppMarketplaceErrors",
			`kpp:marketplace_errors:rate5m / kpp:marketplace_calls:rate5m > 0.2`, "10m", "warning",
			"kapaipai.tw calls are failing",
			"More than 20% of marketplace calls have failed for 10 minutes. Searches and price checks are degraded."),
		alert("KppCallBudgetExhausted",
			`increase(kpp_marketplace_budget_hits_total[5m]) > 0`, "0m", "critical",
			"Marketplace daily call budget exhausted",
			"Calls to kapaipai.tw are being refused by the daily budget until the window resets."),
		alert("KppPriceCheckStale",
			`time() - kpp_last_price_check_timestamp > 3 * 600`, "5m", "warning",
			"Price checks have stopped completing",
			"No price check pass has completed in the last three scheduled intervals."),
		alert("KppWatchCheckFailures",
			`kpp:watch_check_failures:rate5m > 0.05`, "10m", "warning",
			"Watch checks are failing",
			"Individual watch checks have been failing for more than 10 minutes."),
		alert("KppNotificationFailures",
			`increase(kpp_notification_failures_total[5m]) > 0`, "1m", "warning",
			"Notification delivery failures detected",
			"One or more price alerts (LINE or Discord) have failed to send."),
	})
}
