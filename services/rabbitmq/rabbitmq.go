package rabbitmq

import (
	"errors"
	"fmt"
	"macro-traco-backend/services/trackLog"
	"time"

	"github.com/streadway/amqp"
)

//Connection is the connection created
type Connection struct {
	name    string
	domain  string
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Queues  []string
	Err     chan error
	ApiErr  chan error
}

var (
	connectionPool = make(map[string]*Connection)
)

//NewConnection returns the pooled connection for name, creating it if needed
func NewConnection(name, domain string, queues []string) *Connection {
	if c, ok := connectionPool[name]; ok {
		return c
	}
	c := &Connection{
		name:   name,
		domain: domain,
		Queues: queues,
		Err:    make(chan error),
		ApiErr: make(chan error, 1),
	}
	connectionPool[name] = c
	return c
}

//GetConnection returns the connection which was instantiated
func GetConnection(name string) *Connection {
	return connectionPool[name]
}

func (c *Connection) Connect() error {
	var err error
	c.Conn, err = amqp.Dial(c.domain)
	if err != nil {
		return fmt.Errorf("Error in creating rabbitmq connection with %s : %s", c.domain, err.Error())
	}
	go func() {
		<-c.Conn.NotifyClose(make(chan *amqp.Error)) //Listen to NotifyClose
		c.Err <- errors.New("Connection Closed")
		select {
		case c.ApiErr <- errors.New("Api detect Connection Closed"):
		default:
		}
	}()
	c.Channel, err = c.Conn.Channel()
	if err != nil {
		return fmt.Errorf("Channel: %s", err)
	}
	return nil
}

func (c *Connection) BindQueue() error {
	for _, q := range c.Queues {
		if _, err := c.Channel.QueueDeclare(q, true, false, false, false, nil); err != nil {
			return fmt.Errorf("error in declaring the queue %s", err)
		}
	}
	return nil
}

//Reconnect reconnects the connection
func (c *Connection) Reconnect() error {
	if err := c.Connect(); err != nil {
		return err
	}
	if err := c.BindQueue(); err != nil {
		return err
	}
	return nil
}

// Consume starts manual-ack consumers on every queue.
func (c *Connection) Consume() (map[string]<-chan amqp.Delivery, error) {
	m := make(map[string]<-chan amqp.Delivery)
	for _, q := range c.Queues {
		deliveries, err := c.Channel.Consume(q, "", false, false, false, false, nil)
		if err != nil {
			return nil, err
		}
		m[q] = deliveries
	}
	return m, nil
}

func (c *Connection) HandleConsumedDeliveries(q string, delivery <-chan amqp.Delivery, fn func(Connection, string, <-chan amqp.Delivery)) {
	trackLog.Info(fmt.Sprintf("Queue[%s] consuming", q), true)
	for {
		go fn(*c, q, delivery)
		if err := <-c.Err; err != nil {
			trackLog.Error(fmt.Sprintf("Queue[%s] %s", q, err.Error()), true)
			for {
				if err := c.Reconnect(); err != nil {
					trackLog.Error(fmt.Sprintf("Queue[%s] reconnect failed: %s", q, err.Error()), true)
					time.Sleep(60 * time.Second)
					continue
				}
				deliveries, err := c.Consume()
				if err != nil {
					trackLog.Error(fmt.Sprintf("Queue[%s] consume failed, retrying: %s", q, err.Error()), true)
					time.Sleep(60 * time.Second)
				} else {
					trackLog.Info(fmt.Sprintf("Queue[%s] reconnected", q), true)
					delivery = deliveries[q]
					break
				}
			}
		}
	}
}
