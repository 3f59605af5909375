package request

// CreateTicketRequest binds the multipart form fields; the optional
// image part is handled separately by the upload helper.
type CreateTicketRequest struct {
	Title       string `form:"title" binding:"required,max=200"`
	Description string `form:"description" binding:"required,max=2000"`
}

type RedeemReferralRequest struct {
	Code string `json:"code" binding:"required,len=8"`
}
