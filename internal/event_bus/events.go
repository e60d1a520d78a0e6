package event_bus

// ScheduleChanged is published by the widget after every committed mutation
// of the in-memory schedule (save or delete). Subscribers write the local
// cache and push the mapping to the remote store, independently of each other.
const ScheduleChanged EventType = "schedule.changed"

// ScheduleCleared is published when the user wipes all schedules; only the
// local cache reacts to it.
const ScheduleCleared EventType = "schedule.cleared"
