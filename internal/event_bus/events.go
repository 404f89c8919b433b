package event_bus

import "time"

type StreamDeleted struct {
	Id   string
	Name string
}

type ShiftChanged struct {
	Id       string
	StreamId string
	Date     time.Time
}

type ExpenseCreated struct {
	Id       string
	Category string
	Amount   float64
}
