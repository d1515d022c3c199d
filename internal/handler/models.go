package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type RegistrationStatusResponse struct {
	Open            bool   `json:"open"`
	NextChange      string `json:"next_change"`
	Registered      int    `json:"registered"`
	GuaranteedSpots int    `json:"guaranteed_spots"`
	MaxPlayers      int    `json:"max_players"`
	Timezone        string `json:"timezone"`
}

type RegisterRequest struct {
	Handle      string `json:"handle"`
	DisplayName string `json:"display_name"`
}

type RegistrantResponse struct {
	Handle       string `json:"handle"`
	DisplayName  string `json:"display_name"`
	Verified     bool   `json:"verified"`
	RegisteredAt string `json:"registered_at"`
	IsOwn        bool   `json:"is_own"`
	Position     int    `json:"position,omitempty"`
	Guaranteed   bool   `json:"guaranteed"`
}

type RegistrantListResponse struct {
	Registrants     []RegistrantResponse `json:"registrants"`
	GuaranteedSpots int                  `json:"guaranteed_spots"`
	MaxPlayers      int                  `json:"max_players"`
}

type EditNameRequest struct {
	DisplayName string `json:"display_name"`
}

type RemoveRequest struct {
	Reason *string `json:"reason"`
}

type BanResponse struct {
	Handle      string `json:"handle"`
	DisplayName string `json:"display_name"`
	Reason      string `json:"reason"`
	BannedAt    string `json:"banned_at"`
	BannedUntil string `json:"banned_until"`
}

type RemovalResponse struct {
	Handle string       `json:"handle"`
	Ban    *BanResponse `json:"ban,omitempty"`
}

type CreateBanRequest struct {
	Handle      string   `json:"handle"`
	DisplayName string   `json:"display_name"`
	Reason      string   `json:"reason"`
	Days        *float64 `json:"days"`
}

type BanListResponse struct {
	Bans []BanResponse `json:"bans"`
}

type SetVerifiedRequest struct {
	Verified *bool `json:"verified"`
}

type ResetResponse struct {
	Removed int64 `json:"removed"`
}

type AdminLogResponse struct {
	ID          int64  `json:"id"`
	ActorUserID *int64 `json:"actor_user_id"`
	Action      string `json:"action"`
	TargetUser  string `json:"target_user"`
	TargetName  string `json:"target_name"`
	Details     string `json:"details"`
	CreatedAt   string `json:"created_at"`
}

type AdminLogListResponse struct {
	Logs []AdminLogResponse `json:"logs"`
}

type FeedbackRequest struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type FeedbackResponse struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	IsApproved  bool    `json:"is_approved"`
	Upvotes     int     `json:"upvotes"`
	Downvotes   int     `json:"downvotes"`
	Score       int     `json:"score"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   *string `json:"updated_at,omitempty"`
}

type FeedbackListResponse struct {
	Feedback []FeedbackResponse `json:"feedback"`
}

type VoteRequest struct {
	VoteType string `json:"vote_type"`
}

type MyVotesResponse struct {
	Votes map[int64]string `json:"votes"`
}

type ModerateFeedbackRequest struct {
	Action string `json:"action"`
}

type FeedbackStatusRequest struct {
	Status string `json:"status"`
}

type SetRatingsRequest struct {
	Ratings map[string]int `json:"ratings"`
}

type BalanceRequest struct {
	Mode int `json:"mode"`
}
