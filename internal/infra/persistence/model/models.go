package model

// All lists every persisted model in dependency order (referenced tables first).
func All() []any {
	return []any{
		&UserModel{},
		&PostModel{},
		&NotificationModel{},
		&PushTokenModel{},
		&CommentModel{},
	}
}
