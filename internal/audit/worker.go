package audit

// run consumes the queue until Close closes it. Entries already queued are
// still written so Close drains rather than discards.
func (l *Logger) run() {
	defer close(l.done)
	for item := range l.queue {
		l.write(item.ctx, item.entry)
	}
}
