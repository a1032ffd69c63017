package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
)

// WorkCreatedEvent 作品投稿イベント (画像変換などの後処理向け)
type WorkCreatedEvent struct {
	Type        string    `json:"type"`
	WorkID      uint      `json:"workId"`
	Category    string    `json:"category"`
	ImageObject string    `json:"imageObject"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EventPublisher イベント送信インターフェース
type EventPublisher interface {
	PublishWorkCreated(ctx context.Context, event WorkCreatedEvent) error
}

// NewEventPublisher キューURLが設定されていればSQS、なければ何もしないPublisherを返す
func NewEventPublisher(awsSession *session.Session, queueURL string) EventPublisher {
	if awsSession == nil || queueURL == "" {
		return nopPublisher{}
	}
	return &sqsPublisher{
		client:   sqs.New(awsSession),
		queueURL: queueURL,
	}
}

type nopPublisher struct{}

func (nopPublisher) PublishWorkCreated(context.Context, WorkCreatedEvent) error { return nil }

// sqsPublisher SQSにイベントを送信
type sqsPublisher struct {
	client   sqsiface.SQSAPI
	queueURL string
}

// PublishWorkCreated 作品投稿イベントを送信
func (p *sqsPublisher) PublishWorkCreated(ctx context.Context, event WorkCreatedEvent) error {
	event.Type = "work_created"

	messageJSON, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = p.client.SendMessageWithContext(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(messageJSON)),
	})
	return err
}
