package common

const (
	RedisStreamAnalyzeTask = "advisor.analyze"

	RedisStreamGroup    = "advisor-group"
	RedisStreamConsumer = "advisor-consumer"
)
