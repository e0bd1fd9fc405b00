package botRepository

const (
	queryCreateMessage = `
		INSERT INTO chat_messages (
			id, chat_id, text, intent, reply, created_at
		) VALUES (
			:id, :chat_id, :text, :intent, :reply, :created_at
		)
	`

	queryGetMessageByID = `
		SELECT
			id, chat_id, text, intent, reply, created_at
		FROM chat_messages
		WHERE id = :id
	`

	queryGetMessagesByChatID = `
		SELECT
			id, chat_id, text, intent, reply, created_at
		FROM chat_messages
		WHERE chat_id = :chat_id
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountMessagesByChatID = `
		SELECT COUNT(*)
		FROM chat_messages
		WHERE chat_id = :chat_id
	`
)
