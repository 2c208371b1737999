package mailer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const detachedByFallback = "the account owner"

// Notifier sends best-effort patient emails. Neither method returns an
// error: a failed or panicking send is logged and the enclosing workflow
// proceeds as if nothing happened.
type Notifier interface {
	PatientRegistered(ctx context.Context, fullName, email string)
	PatientDetached(ctx context.Context, fullName, email, removedBy string)
}

func NewNotifier(sender Sender, dispatcher Dispatcher, logger *zap.SugaredLogger) Notifier {
	return &emailNotifier{
		sender:     sender,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

type emailNotifier struct {
	sender     Sender
	dispatcher Dispatcher
	logger     *zap.SugaredLogger
}

var _ Notifier = &emailNotifier{}

func (n *emailNotifier) PatientRegistered(_ context.Context, fullName, email string) {
	defer n.recoverFromDispatch("registered", email)
	message := RegisteredMessage(fullName, email)
	n.dispatcher.Submit(func(ctx context.Context) error {
		return n.sender.Send(ctx, message)
	})
}

func (n *emailNotifier) PatientDetached(_ context.Context, fullName, email, removedBy string) {
	defer n.recoverFromDispatch("detached", email)
	message := DetachedMessage(fullName, email, removedBy)
	n.dispatcher.Submit(func(ctx context.Context) error {
		return n.sender.Send(ctx, message)
	})
}

func (n *emailNotifier) recoverFromDispatch(kind, email string) {
	if r := recover(); r != nil {
		n.logger.Errorw("notification dispatch panicked", "kind", kind, "email", email, "panic", r)
	}
}

func RegisteredMessage(fullName, email string) Message {
	return Message{
		To:      email,
		Subject: "Patient Registration Notification",
		Lines: []string{
			greeting(fullName),
			"You have been registered as a new patient.",
			"We will contact you before your first appointment.",
		},
	}
}

func DetachedMessage(fullName, email, removedBy string) Message {
	if removedBy == "" {
		removedBy = detachedByFallback
	}
	return Message{
		To:      email,
		Subject: "Patient Deregistration Notification",
		Lines: []string{
			greeting(fullName),
			fmt.Sprintf("You have been removed from the patients list of %s.", removedBy),
			fmt.Sprintf("If this was a mistake, please contact %s.", removedBy),
		},
	}
}

func greeting(fullName string) string {
	if fullName == "" {
		return "Hi,"
	}
	return fmt.Sprintf("Hi %s,", fullName)
}
