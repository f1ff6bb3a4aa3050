package domain

// NoticeLevel controls how a notice is styled.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
	NoticeInfo    NoticeLevel = "info"
)

// Notice is a message shown under a panel after an interaction.
// Acknowledgements of simulated actions are notices too.
type Notice struct {
	Level NoticeLevel
	Text  string
}

type AdminPanel struct {
	Couriers []Courier
	Notices  []Notice
}

type DeliveryPanel struct {
	Deliveries []Delivery
	Filter     DeliveryStatus
	Notices    []Notice
}

type ReportsPanel struct {
	Summary ReportSummary
}

type AuthPanel struct {
	Mode    AuthMode
	Notices []Notice
}

// Page is the output of one render pass. A nil panel is not shown.
type Page struct {
	Title    string
	Intro    string
	State    ViewState
	Admin    *AdminPanel
	Delivery *DeliveryPanel
	Reports  *ReportsPanel
	Auth     AuthPanel
}
