package dto

type ViewState struct {
	Panels []string `json:"panels"`
	Auth   string   `json:"auth"`
	Status string   `json:"status,omitempty"`
}

type NoticeResponse struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

type CourierResponse struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type DeliveryResponse struct {
	ID          int    `json:"id"`
	Customer    string `json:"customer"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
}

type AdminPanelResponse struct {
	Couriers []CourierResponse `json:"couriers"`
	Notices  []NoticeResponse  `json:"notices"`
}

type DeliveryPanelResponse struct {
	Deliveries []DeliveryResponse `json:"deliveries"`
	Filter     string             `json:"filter,omitempty"`
	Notices    []NoticeResponse   `json:"notices"`
}

type ReportsPanelResponse struct {
	Completed int                `json:"completed"`
	Pending   int                `json:"pending"`
	Details   []DeliveryResponse `json:"details"`
}

type AuthPanelResponse struct {
	Mode    string           `json:"mode"`
	Notices []NoticeResponse `json:"notices"`
}

type PageResponse struct {
	Title    string                 `json:"title"`
	Intro    string                 `json:"intro"`
	View     ViewState              `json:"view"`
	Admin    *AdminPanelResponse    `json:"admin,omitempty"`
	Delivery *DeliveryPanelResponse `json:"delivery,omitempty"`
	Reports  *ReportsPanelResponse  `json:"reports,omitempty"`
	Auth     AuthPanelResponse      `json:"auth"`
}
