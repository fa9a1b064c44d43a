package delivery

import "fleet/internal/entities"

// NotificationTemplate шаблон клиентского уведомления для перехода.
type NotificationTemplate struct {
	Type           string
	Title          string
	Message        string
	ActionRequired bool
	Priority       entities.NotificationPriorityType
}

// Transition описывает эффекты одного перехода статуса доставки:
// зеркальный статус экипажа, восстановление ресурсов, уведомление, текст ответа.
type Transition struct {
	Target          entities.DeliveryStatusType
	CrewStatus      entities.CrewStatusType
	Terminal        bool // запускает восстановление ресурсов
	CountsDelivered bool // инкрементирует статистику грузовика
	Notification    *NotificationTemplate
	SuccessMessage  string
}
