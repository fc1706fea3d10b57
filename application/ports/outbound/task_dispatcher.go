package outbound

// TaskDispatcher runs tasks on a shared bounded worker pool. Submit returns
// an error when the pool cannot accept the task, never when the task fails.
type TaskDispatcher interface {
	Submit(task func()) error
}
