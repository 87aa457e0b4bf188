package rabbitmq

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/SpookyBoy99/chroma/internal/configs"
	"github.com/SpookyBoy99/chroma/internal/repository"
	"github.com/streadway/amqp"
)

type DBAlbumRepos interface {
	AddAlbum(ctx context.Context, albumid string) *repository.RepositoryResponse
	DeleteAlbumData(ctx context.Context, albumid string) *repository.RepositoryResponse
}

type LogProducer interface {
	NewGalleryLog(level, place, traceid, msg string)
}

type RabbitConsumer struct {
	conn        *amqp.Connection
	channel     *amqp.Channel
	queue       amqp.Queue
	ctx         context.Context
	cancel      context.CancelFunc
	wg          *sync.WaitGroup
	logproducer LogProducer
	albumrepo   DBAlbumRepos
}

func NewRabbitConsumer(cfg configs.RabbitMQConfig, logproducer LogProducer, albumrepo DBAlbumRepos) (*RabbitConsumer, error) {
	conn, err := amqp.Dial(fmt.Sprintf("amqp://%s:%s@%s:%d/", cfg.Name, cfg.Password, cfg.Host, cfg.Port))
	if err != nil {
		log.Printf("[DEBUG] [Gallery-Service] Failed to connect to RabbitMQ: %v", err)
		return nil, err
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	err = channel.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}
	queue, err := channel.QueueDeclare(cfg.Queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}
	for _, key := range []string{albumCreatedKey, albumDeletedKey} {
		if err := channel.QueueBind(queue.Name, key, cfg.Exchange, false, nil); err != nil {
			channel.Close()
			conn.Close()
			return nil, err
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	rc := &RabbitConsumer{
		conn:        conn,
		channel:     channel,
		queue:       queue,
		ctx:         ctx,
		cancel:      cancel,
		wg:          &sync.WaitGroup{},
		logproducer: logproducer,
		albumrepo:   albumrepo,
	}
	rc.wg.Add(1)
	go rc.readEvent()
	log.Println("[DEBUG] [Gallery-Service] Successful connect to Rabbit-Consumer")
	return rc, nil
}

func (rc *RabbitConsumer) Close() {
	rc.cancel()
	rc.channel.Close()
	rc.conn.Close()
	rc.wg.Wait()
	log.Println("[DEBUG] [Gallery-Service] Successful close Rabbit-Consumer")
}
