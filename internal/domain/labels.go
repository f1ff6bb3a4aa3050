package domain

import "fmt"

// User-facing copy shared by every front end.
const (
	TitleText = "Welcome to CorvoDelivery"
	IntroText = "This is the starting point for managing your delivery service with CorvoDelivery!"

	AdminNavLabel    = "Admin Panel"
	DeliveryNavLabel = "Delivery Panel"
	ReportsNavLabel  = "Delivery Reports"

	AdminHeading       = "Painel de Administradores"
	AddCourierHeading  = "Adicionar Entregador"
	CourierListHeading = "Lista de Entregadores"
	CourierNameLabel   = "Nome do Entregador"
	CourierContactLbl  = "Contato do Entregador"
	AddCourierButton   = "Adicionar"

	DeliveryHeading = "Painel de Entregadores"
	PendingHeading  = "Entregas Pendentes"

	ReportsHeading   = "Relatório de Entregas"
	CompletedMetric  = "Entregas Concluídas"
	PendingMetric    = "Entregas Pendentes"
	ReportDetailHead = "Detalhes das Entregas"

	AuthSelectorLabel    = "Escolha uma opção"
	LoginOptionLabel     = "Login"
	RegisterOptionLabel  = "Registrar"
	UsernameLabel        = "Usuário"
	PasswordLabel        = "Senha"
	NewUsernameLabel     = "Novo Usuário"
	NewPasswordLabel     = "Nova Senha"
	ConfirmPasswordLabel = "Confirmar Senha"
	LoginButtonLabel     = "Entrar"
	RegisterButtonLabel  = "Registrar"
)

func NavLabel(p Panel) string {
	switch p {
	case PanelAdmin:
		return AdminNavLabel
	case PanelDelivery:
		return DeliveryNavLabel
	case PanelReports:
		return ReportsNavLabel
	}
	return p.String()
}

func CourierLine(c Courier) string {
	return fmt.Sprintf("- %s (%s)", c.Name, c.Contact)
}

func RemoveCourierButton(c Courier) string {
	return "Remover " + c.Name
}

func DeliveryLine(d Delivery) string {
	return fmt.Sprintf("Entrega ID: %d para %s - %s", d.ID, d.Customer, d.Status.Label())
}

func CompleteDeliveryButton(d Delivery) string {
	return fmt.Sprintf("Marcar como Entregue - ID %d", d.ID)
}

func PauseDeliveryButton(d Delivery) string {
	return fmt.Sprintf("Pausar Entrega - ID %d", d.ID)
}

func ReportLine(d Delivery) string {
	return fmt.Sprintf("ID: %d | Cliente: %s | Status: %s", d.ID, d.Customer, d.Status.Label())
}
