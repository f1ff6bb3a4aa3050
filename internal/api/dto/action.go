package dto

type EventRequest struct {
	Action          string `json:"action"`
	CourierName     string `json:"courier_name"`
	CourierContact  string `json:"courier_contact"`
	DeliveryID      int    `json:"delivery_id"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	NewUsername     string `json:"new_username"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type ActionRequest struct {
	View  ViewState    `json:"view"`
	Event EventRequest `json:"event"`
}
