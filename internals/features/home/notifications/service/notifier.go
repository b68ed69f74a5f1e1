package service

import (
	"context"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sam002696/tuition-management-backend/internals/features/home/notifications/model"
)

// Payload is what every domain event carries to the counterparty.
type Payload struct {
	Type     string    `json:"type"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	EntityID uuid.UUID `json:"entity_id"`
}

// Notifier fans a domain event out to the recipient's inbox row and the
// realtime channel. Delivery is at-least-attempt: failures are logged and
// never fail the state transition that triggered them.
type Notifier struct {
	DB    *gorm.DB
	Redis *redis.Client // nil disables the push channel
}

func NewNotifier(db *gorm.DB, rdb *redis.Client) *Notifier {
	return &Notifier{DB: db, Redis: rdb}
}

func (n *Notifier) Notify(recipientID uuid.UUID, recipientRole string, p Payload) {
	row := model.NotificationModel{
		UserID:       recipientID,
		Type:         p.Type,
		Title:        p.Title,
		Body:         p.Body,
		EntityID:     p.EntityID,
		AudienceRole: recipientRole,
	}
	if err := n.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] notification inbox write for %s: %v", recipientID, err)
	}

	if n.Redis == nil {
		return
	}
	msg, err := sonic.Marshal(struct {
		Payload
		AudienceRole string `json:"audience_role"`
	}{Payload: p, AudienceRole: recipientRole})
	if err != nil {
		log.Printf("[ERROR] notification payload marshal: %v", err)
		return
	}

	// Push delivery must never hold up the request that triggered it.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := n.Redis.Publish(ctx, "notifications:"+recipientID.String(), msg).Err(); err != nil {
			log.Printf("[ERROR] notification publish for %s: %v", recipientID, err)
		}
	}()
}
