package syncqueue

import (
	"context"
	"encoding/json"
	"mediflow-service/internal/pkg/constvars"
	"mediflow-service/internal/pkg/exceptions"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Task is one pending ledger synchronization, queued when the inline sync
// attempt fails so the patient view converges instead of silently drifting.
type Task struct {
	RecordID    string    `json:"record_id"`
	PatientID   string    `json:"patient_id"`
	TestName    string    `json:"test_name"`
	XRay        bool      `json:"x_ray"`
	Result      string    `json:"result"`
	PerformedBy string    `json:"performed_by"`
	ResultDate  time.Time `json:"result_date"`
	FailedCount int       `json:"failed_count"`
}

// Service manages the durable retry queue for ledger synchronization.
type Service struct {
	ch  *amqp.Channel
	log *zap.Logger
}

// NewService declares the durable sync queue and its dead-letter queue.
func NewService(conn *amqp.Connection, log *zap.Logger) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	for _, queueName := range []string{constvars.LedgerSyncQueueName, constvars.LedgerSyncDeadLetterQueueName} {
		_, err = ch.QueueDeclare(
			queueName,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		)
		if err != nil {
			return nil, err
		}
	}

	if err := ch.Qos(1, 0, false); err != nil {
		return nil, err
	}

	return &Service{ch: ch, log: log}, nil
}

// Publish enqueues a task on the standard queue with persistent delivery.
func (s *Service) Publish(ctx context.Context, task *Task) error {
	return s.publish(ctx, constvars.LedgerSyncQueueName, task)
}

// PublishToDLQ parks a task that exceeded its retry budget.
func (s *Service) PublishToDLQ(ctx context.Context, task *Task) error {
	return s.publish(ctx, constvars.LedgerSyncDeadLetterQueueName, task)
}

func (s *Service) publish(ctx context.Context, queueName string, task *Task) error {
	body, err := json.Marshal(task)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}

	s.log.Info("ledger sync task queued",
		zap.String(constvars.LoggingRecordIDKey, task.RecordID),
		zap.String(constvars.LoggingPatientIDKey, task.PatientID),
		zap.Int(constvars.LoggingAttemptKey, task.FailedCount),
	)
	return nil
}

// Consume opens a delivery stream from the standard queue. Messages are
// acked or requeued by the worker.
func (s *Service) Consume(consumerTag string) (<-chan amqp.Delivery, error) {
	deliveries, err := s.ch.Consume(
		constvars.LedgerSyncQueueName,
		consumerTag,
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, exceptions.ErrRabbitMQConsumeMessages(err, constvars.LedgerSyncQueueName)
	}
	return deliveries, nil
}

func (s *Service) Close() error {
	return s.ch.Close()
}
