package kafka

import (
	"github.com/IBM/sarama"
)

var WaitForTopic = waitForTopic

func NewConsumerWithGroup(log consumerLogger, group sarama.ConsumerGroup, topic string, handler sarama.ConsumerGroupHandler) *Consumer {
	return newConsumer(log, group, topic, handler)
}
