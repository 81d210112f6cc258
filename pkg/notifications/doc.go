// Package notifications fans domain events (appointment confirmed, payment
// failed, review request) out to a user's enabled channels: email, SMS and
// push.
//
// Delivery is batch-driven, not event-driven. Enqueue persists an Item in
// status pending; a periodic Sweeper claims a bounded page of due items,
// flips them to processing, and attempts delivery. Terminal statuses are
// sent, failed and cancelled. Transient failures reschedule the item back
// to pending with a linear backoff (retryCount * 15 minutes) until the
// retry ceiling; exceeding the ceiling is terminal failed and the item's
// schedule is never touched again.
//
// While an item is processing it is owned exclusively by the sweep that
// claimed it. The claim is an atomic single-document update, so two
// overlapping sweeps cannot double-send. A crashed sweep leaves its items
// in processing; ReclaimStale returns them to pending after a timeout.
//
// Channel selection intersects the event's requested channels with the
// user's per-type preference flags. An empty intersection cancels the item
// rather than retrying it. A per-user quiet-hours window (possibly spanning
// midnight) defers delivery by exactly one hour without consuming a retry.
//
// Basic usage:
//
//	storage := notifications.NewMemoryStorage()
//	dispatcher := notifications.NewDispatcher(storage, prefs)
//	_, _ = dispatcher.Enqueue(ctx, notifications.NewAppointmentConfirmedEvent(
//		userID, "Dr. Mehta", "2026-09-15", "10:00",
//	))
//
//	sweeper, _ := notifications.NewSweeper(storage, prefs, senders)
//	_ = sweeper.Start(ctx)
//	defer sweeper.Stop()
package notifications
