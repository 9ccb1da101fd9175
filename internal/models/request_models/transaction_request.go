package request_models

type PurchaseItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type CreatePurchaseRequest struct {
	PageID        string         `json:"pageId" binding:"required"`
	Products      []PurchaseItem `json:"products" binding:"required"`
	Total         float64        `json:"total"`
	PaymentMethod string         `json:"paymentMethod" binding:"required"`

	CustomerName    string `json:"customerName" binding:"required"`
	CustomerPhone   string `json:"customerPhone" binding:"required"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerAddress string `json:"customerAddress"`
	Shipping        bool   `json:"shipping"`
}

type UpdatePurchaseStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateLeadRequest struct {
	PageID  string `json:"pageId" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`

	AppointmentDate string `json:"appointmentDate"`
}

type UpdateLeadStatusRequest struct {
	AppointmentStatus string `json:"appointmentStatus" binding:"required"`
}
