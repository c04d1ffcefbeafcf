package request

// PurchaseVipRequest is the request body for buying a VIP plan
type PurchaseVipRequest struct {
	PlanID string `json:"plan_id"`
}

// AchievementProgressRequest is the request body for advancing achievement
// progress
type AchievementProgressRequest struct {
	Delta int `json:"delta"`
}
