package notification

import (
	"context"
	"errors"
	"testing"

	"swirl/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMulticastClient struct {
	lastMessage *messaging.MulticastMessage
	response    *messaging.BatchResponse
	err         error
}

func (f *fakeMulticastClient) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.lastMessage = message

	return f.response, f.err
}

func TestFirebaseService_SendBatchNotification_Empty(t *testing.T) {
	client := &fakeMulticastClient{}
	svc := &firebaseService{client: client}

	success, failure, unregistered, err := svc.SendBatchNotification(context.Background(), nil, "t", "b", nil)
	require.NoError(t, err)
	assert.Zero(t, success)
	assert.Zero(t, failure)
	assert.Empty(t, unregistered)
	assert.Nil(t, client.lastMessage)
}

func TestFirebaseService_SendBatchNotification_TooManyTokens(t *testing.T) {
	svc := &firebaseService{client: &fakeMulticastClient{}}
	tokens := make([]string, service.MaxPushBatchSize+1)

	_, _, _, err := svc.SendBatchNotification(context.Background(), tokens, "t", "b", nil)
	assert.Error(t, err)
}

func TestFirebaseService_SendBatchNotification_ClientError(t *testing.T) {
	svc := &firebaseService{client: &fakeMulticastClient{err: errors.New("boom")}}

	_, _, _, err := svc.SendBatchNotification(context.Background(), []string{"a"}, "t", "b", nil)
	assert.ErrorContains(t, err, "boom")
}

func TestFirebaseService_SendBatchNotification_PassesPayload(t *testing.T) {
	client := &fakeMulticastClient{response: &messaging.BatchResponse{
		SuccessCount: 2,
		Responses:    []*messaging.SendResponse{{Success: true}, {Success: true}},
	}}
	svc := &firebaseService{client: client}
	data := map[string]string{"type": "notification"}

	success, failure, unregistered, err := svc.SendBatchNotification(context.Background(), []string{"a", "b"}, "Title", "Body", data)
	require.NoError(t, err)
	assert.Equal(t, 2, success)
	assert.Zero(t, failure)
	assert.Empty(t, unregistered)
	assert.Equal(t, []string{"a", "b"}, client.lastMessage.Tokens)
	assert.Equal(t, "Title", client.lastMessage.Notification.Title)
	assert.Equal(t, "Body", client.lastMessage.Notification.Body)
	assert.Equal(t, data, client.lastMessage.Data)
}

func TestDisabledPushService(t *testing.T) {
	svc := disabledPushService{}

	success, failure, _, err := svc.SendBatchNotification(context.Background(), []string{"a", "b"}, "t", "b", nil)
	assert.Error(t, err)
	assert.Zero(t, success)
	assert.Equal(t, 2, failure)
}
