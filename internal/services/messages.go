package services

import (
	"corvo-delivery/internal/domain"
	"fmt"
)

const (
	MsgInvalidCredentials = "Credenciais inválidas. Tente novamente."
	MsgPasswordMismatch   = "As senhas não coincidem. Tente novamente."
	MsgRegistered         = "Registro realizado com sucesso!"
)

func courierAdded(name string) domain.Notice {
	return domain.Notice{Level: domain.NoticeSuccess, Text: fmt.Sprintf("Entregador %s adicionado com sucesso!", name)}
}

func courierRemoved(name string) domain.Notice {
	return domain.Notice{Level: domain.NoticeInfo, Text: fmt.Sprintf("Entregador %s removido.", name)}
}

func deliveryCompleted(id int) domain.Notice {
	return domain.Notice{Level: domain.NoticeSuccess, Text: fmt.Sprintf("Entrega %d marcada como concluída.", id)}
}

func deliveryPaused(id int) domain.Notice {
	return domain.Notice{Level: domain.NoticeInfo, Text: fmt.Sprintf("Entrega %d está pausada.", id)}
}

func loggedIn(username string) domain.Notice {
	return domain.Notice{Level: domain.NoticeSuccess, Text: fmt.Sprintf("Login realizado com sucesso! Bem-vindo(a), %s.", username)}
}

func welcome(username string) domain.Notice {
	return domain.Notice{Level: domain.NoticeInfo, Text: fmt.Sprintf("Bem-vindo(a), %s!", username)}
}
