// Package queue 向 RabbitMQ 发布领域事件。
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// OrderPlacedQueue 下单事件队列名
const OrderPlacedQueue = "order.placed"

// OrderPlaced 下单事件，字段与订单快照一致
type OrderPlaced struct {
	OrderID          uuid.UUID `json:"orderId"`
	UserID           uuid.UUID `json:"userId"`
	MovieID          uuid.UUID `json:"movieId"`
	MovieTitle       string    `json:"movieTitle"`
	Price            float64   `json:"price"`
	CustomerFullName string    `json:"customerFullName"`
	CustomerEmail    string    `json:"customerEmail"`
	OrderDate        time.Time `json:"orderDate"`
}

// Publisher 事件发布
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, event OrderPlaced) error
}

// NopPublisher 未配置 AMQP_URL 时使用
type NopPublisher struct{}

func (NopPublisher) PublishOrderPlaced(context.Context, OrderPlaced) error { return nil }

// DefaultPublishTimeout 单次发布（含建连与握手）的上限
const DefaultPublishTimeout = 3 * time.Second

// AMQPPublisher 每次发布建立连接，消息持久化。
// 建连、握手与发布都受 ctx 和 timeout 约束，broker 无响应时不会拖住请求。
type AMQPPublisher struct {
	url     string
	timeout time.Duration
}

// NewPublisher url 为空时返回 NopPublisher
func NewPublisher(url string) Publisher {
	if url == "" {
		return NopPublisher{}
	}
	return NewAMQPPublisher(url, DefaultPublishTimeout)
}

func NewAMQPPublisher(url string, timeout time.Duration) *AMQPPublisher {
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	return &AMQPPublisher{url: url, timeout: timeout}
}

// PublishOrderPlaced 发布到 order.placed 队列
func (p *AMQPPublisher) PublishOrderPlaced(ctx context.Context, event OrderPlaced) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return p.publish(ctx, OrderPlacedQueue, body)
}

func (p *AMQPPublisher) publish(ctx context.Context, queue string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	conn, err := p.dial(ctx)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	// 握手完成后截止时间被清除，ctx 结束时关闭连接以中断后续调用
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	err = ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	return nil
}

// dial 建连并为握手设置截止时间，取 ctx 截止时间
func (p *AMQPPublisher) dial(ctx context.Context) (*amqp.Connection, error) {
	return amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial: func(network, addr string) (net.Conn, error) {
			var d net.Dialer
			conn, err := d.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			deadline, ok := ctx.Deadline()
			if !ok {
				deadline = time.Now().Add(p.timeout)
			}
			if err := conn.SetDeadline(deadline); err != nil {
				_ = conn.Close()
				return nil, err
			}
			return conn, nil
		},
	})
}
