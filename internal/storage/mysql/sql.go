package mysql

// Schema lives in migrations/0001_content.sql.

const deleteKindSQL = `DELETE FROM content_documents WHERE doc_type = ?`

const insertDocsPrefix = "INSERT INTO content_documents\n  (doc_type, doc_id, position, body)\nVALUES "

// Two syncs racing on one kind both delete-then-insert inside their own
// transaction; the last writer wins row by row.
const insertDocsOnDup = " ON DUPLICATE KEY UPDATE\n" +
	"  position = VALUES(position),\n" +
	"  body     = VALUES(body)\n"

const listDocsSQL = `
SELECT doc_id, position, body
FROM content_documents
WHERE doc_type = ?
ORDER BY position ASC, doc_id ASC
`

const insertSyncLogSQL = `
INSERT INTO content_sync_log (doc_type, doc_count, error)
VALUES (?, ?, ?)
`
