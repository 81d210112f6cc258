// Package audit records who did what to which resource, with before/after
// snapshots for mutations that change stored data. Events carry actor
// identity (user, session), request metadata (request ID, IP, user agent)
// and free-form metadata, and are persisted through a pluggable Storage.
//
// The logger is constructed explicitly and injected wherever auditing is
// needed; there is no package-level singleton.
//
//	logger := audit.NewLogger(storage,
//	    audit.WithUserIDExtractor(userIDFromContext),
//	    audit.WithSessionIDExtractor(sessionIDFromContext),
//	    audit.WithMetadataFilter(audit.NewMetadataFilter()),
//	)
//
//	err := logger.Log(ctx, "profile.update",
//	    audit.WithResource("patients", patientID),
//	    audit.WithChange(before, after),
//	)
//
// A MetadataFilter scrubs PII from metadata and snapshots before anything
// reaches storage: fields can be removed, masked, or replaced with a SHA-256
// hash, matched by name or wildcard pattern.
//
// Reading happens through a Reader over the same Storage:
//
//	reader := audit.NewReader(storage)
//	events, err := reader.Find(ctx, audit.Criteria{
//	    UserID: userID,
//	    Action: "profile.update",
//	    Limit:  50,
//	})
//
// MemoryStorage backs tests and development, MongoStorage backs production.
// WithAsync enables batched background writes for high-volume paths.
package audit
