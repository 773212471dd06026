package config

type WorkerKeyStruct struct {
	AnswerStatsQueue string
}

var WorkerKey = &WorkerKeyStruct{
	AnswerStatsQueue: "answer_stats_queue",
}
