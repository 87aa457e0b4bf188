package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/SpookyBoy99/chroma/internal/brokers/kafka"
)

type AlbumEvent struct {
	AlbumID string `json:"albumid"`
	Traceid string `json:"traceid"`
}

const (
	albumCreatedKey = "album.created"
	albumDeletedKey = "album.deleted"
)

func (rc *RabbitConsumer) readEvent() {
	const place = "RabbitConsumer-ReadEvent"
	defer rc.wg.Done()
	msgs, err := rc.channel.Consume(
		rc.queue.Name,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Printf("[DEBUG] [Gallery-Service] Failed to consume messages: %v", err)
		return
	}
	for {
		select {
		case <-rc.ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				rc.logproducer.NewGalleryLog(kafka.LogLevelInfo, place, "", "Rabbit's channel closed, stopping worker")
				return
			}
			var newmsg AlbumEvent
			err := json.Unmarshal(msg.Body, &newmsg)
			if err != nil {
				rc.logproducer.NewGalleryLog(kafka.LogLevelError, place, newmsg.Traceid, fmt.Sprintf("Failed to unmarshal message: %v", err))
				msg.Nack(false, false)
				continue
			}
			switch msg.RoutingKey {
			case albumCreatedKey:
				rc.logproducer.NewGalleryLog(kafka.LogLevelInfo, place, newmsg.Traceid, fmt.Sprintf("Received album created event for albumID: %s", newmsg.AlbumID))
				resp := rc.albumrepo.AddAlbum(rc.ctx, newmsg.AlbumID)
				if resp.Errors != nil {
					rc.logproducer.NewGalleryLog(kafka.LogLevelError, resp.Place, newmsg.Traceid, resp.Errors.Message)
					msg.Nack(false, true)
					continue
				}
			case albumDeletedKey:
				rc.logproducer.NewGalleryLog(kafka.LogLevelInfo, place, newmsg.Traceid, fmt.Sprintf("Received album deleted event for albumID: %s", newmsg.AlbumID))
				resp := rc.albumrepo.DeleteAlbumData(rc.ctx, newmsg.AlbumID)
				if resp.Errors != nil {
					rc.logproducer.NewGalleryLog(kafka.LogLevelError, resp.Place, newmsg.Traceid, resp.Errors.Message)
					msg.Nack(false, true)
					continue
				}
			}
			err = msg.Ack(false)
			if err != nil {
				rc.logproducer.NewGalleryLog(kafka.LogLevelError, place, newmsg.Traceid, fmt.Sprintf("Failed to acknowledge message: %v", err))
			}
		}
	}
}
