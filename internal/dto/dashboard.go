package dto

// DashboardResponse aggregates everything the overview screen shows: the
// user's profile, income and expense totals, the five most recent
// transactions, budget statuses with the remaining summary, unread
// notifications and savings goals with progress.
type DashboardResponse struct {
	User               UserProfileResponse       `json:"user"`
	Totals             TransactionTotalsResponse `json:"totals"`
	RecentTransactions []TransactionResponse     `json:"recentTransactions"`
	Budgets            []BudgetStatusResponse    `json:"budgets"`
	BudgetSummary      string                    `json:"budgetSummary,omitempty"`
	Notifications      []NotificationResponse    `json:"notifications"`
	SavingsGoals       []SavingsGoalResponse     `json:"savingsGoals"`
}
