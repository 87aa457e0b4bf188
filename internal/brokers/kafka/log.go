package kafka

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

type GalleryLog struct {
	Level     string `json:"-"`
	Service   string `json:"service"`
	Place     string `json:"place"`
	TraceID   string `json:"trace_id"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

func (kf *KafkaProducer) NewGalleryLog(level, place, traceid, msg string) {
	newlog := GalleryLog{
		Level:     level,
		Service:   "Gallery-Service",
		Place:     place,
		TraceID:   traceid,
		Timestamp: time.Now().Format(time.RFC3339),
		Message:   msg,
	}
	select {
	case <-kf.context.Done():
		log.Printf("[WARN] [Gallery-Service] Producer closing, dropping log: %+v", newlog)
		return
	case kf.logchan <- newlog:
	default:
		log.Printf("[WARN] [Gallery-Service] Log channel is full, dropping log: %+v", newlog)
	}
}

func (kf *KafkaProducer) sendLogs(num int) {
	defer kf.wg.Done()
	for {
		select {
		case <-kf.context.Done():
			log.Printf("[DEBUG] [Gallery-Service] [Worker: %v] Context canceled, stopping Kafka-worker...", num)
			return
		case logg, ok := <-kf.logchan:
			if !ok {
				return
			}
			ctx, cancel := context.WithTimeout(kf.context, 5*time.Second)
			topic := "gallery-" + logg.Level + "-log-topic"
			data, err := json.Marshal(logg)
			if err != nil {
				log.Printf("[ERROR] [Gallery-Service] [Worker: %v] Failed to marshal log: %v", num, err)
				cancel()
				continue
			}
		label:
			for i := 0; i < 3; i++ {
				select {
				case <-ctx.Done():
					log.Printf("[WARN] [Gallery-Service] [Worker: %v] Context canceled or expired, dropping log: %v", num, logg)
					break label
				default:
					err = kf.writer.WriteMessages(ctx, kafka.Message{
						Topic: topic,
						Key:   []byte(logg.TraceID),
						Value: data,
					})
					if err == nil {
						break label
					}
					log.Printf("[WARN] [Gallery-Service] [Worker: %v] Retry %d failed to send log: %v", num, i+1, err)
					time.Sleep(1 * time.Second)
				}
			}
			if err != nil {
				log.Printf("[ERROR] [Gallery-Service] [Worker: %v] Failed to send log after all retries: %v, (%v)", num, err, logg)
			}
			cancel()
		}
	}
}

type serviceLog struct {
	Message string `json:"service_log"`
}

func (kf *KafkaProducer) LogStart() {
	kf.sendServiceLog(serviceLog{Message: "Gallery-Service has started"})
}

func (kf *KafkaProducer) LogClose() {
	kf.sendServiceLog(serviceLog{Message: "Gallery-Service has stopped"})
}

func (kf *KafkaProducer) sendServiceLog(logg serviceLog) {
	for _, topic := range kf.topics {
		select {
		case <-kf.context.Done():
			log.Printf("[DEBUG] [Gallery-Service] Context canceled or expired before send Service Log")
			return
		default:
			data, err := json.Marshal(logg)
			if err != nil {
				log.Printf("[DEBUG] [Gallery-Service] Failed to marshal log: %v", err)
				return
			}
			err = kf.writer.WriteMessages(kf.context, kafka.Message{
				Topic: topic,
				Value: data,
			})
			if err != nil {
				log.Printf("[DEBUG] [Gallery-Service] Failed to send Service Log(%v): %v", logg, err)
			}
		}
	}
}
