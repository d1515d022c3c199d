package repository

import "context"

// TxRepositories - репозитории, привязанные к одной транзакции
type TxRepositories struct {
	Registrants RegistrantRepository
	Bans        BanRepository
	AdminLogs   AdminLogRepository
}

// Transactor выполняет fn в транзакции: ошибка fn откатывает все изменения
type Transactor interface {
	RunInTx(ctx context.Context, fn func(tx TxRepositories) error) error
}
