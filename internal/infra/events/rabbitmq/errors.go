package rabbitmq

import "errors"

var (
	// ErrNotConnected возвращается при публикации без установленного соединения
	ErrNotConnected = errors.New("rabbitmq publisher: not connected")

	// ErrPublish возвращается при ошибке публикации сообщения
	ErrPublish = errors.New("rabbitmq publisher: failed to publish message")
)
