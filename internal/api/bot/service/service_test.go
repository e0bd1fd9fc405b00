package botService

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jeyachandranj/Flight-Bot/internal/api/bot"
	botRepository "github.com/jeyachandranj/Flight-Bot/internal/api/bot/repository"
	"github.com/jeyachandranj/Flight-Bot/internal/entity"
	"github.com/jeyachandranj/Flight-Bot/pkg/nlp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type fakeMessenger struct {
	sent    []sentMessage
	sendErr error
	webhook string
}

type sentMessage struct {
	chatID int64
	text   string
}

func (f *fakeMessenger) SendMessage(_ context.Context, chatID int64, text string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

func (f *fakeMessenger) SetWebhook(_ context.Context, webhookURL string) error {
	f.webhook = webhookURL
	return nil
}

type fakeCompletion struct {
	reply string
	err   error
	asked []string
}

func (f *fakeCompletion) Complete(_ context.Context, userMessage string) (string, error) {
	f.asked = append(f.asked, userMessage)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeRedis struct {
	seen map[int64]bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{seen: map[int64]bool{}}
}

func (f *fakeRedis) MarkUpdateProcessed(_ context.Context, updateID int64, _ time.Duration) error {
	f.seen[updateID] = true
	return nil
}

func (f *fakeRedis) IsUpdateProcessed(_ context.Context, updateID int64) (bool, error) {
	return f.seen[updateID], nil
}

type fakeMessageStore struct {
	created   []entity.ChatMessage
	createErr error
}

func (f *fakeMessageStore) CreateMessage(_ context.Context, msg entity.ChatMessage) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, msg)
	return nil
}

func (f *fakeMessageStore) GetMessagesByChatID(_ context.Context, chatID int64, limit, offset int) ([]entity.ChatMessage, int, error) {
	out := make([]entity.ChatMessage, 0)
	for _, msg := range f.created {
		if msg.ChatID == chatID {
			out = append(out, msg)
		}
	}
	total := len(out)
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeMessageStore) GetMessageByID(_ context.Context, id string) (entity.ChatMessage, error) {
	for _, msg := range f.created {
		if msg.ID == id {
			return msg, nil
		}
	}
	return entity.ChatMessage{}, bot.ErrMessageNotFound
}

type fakeRepository struct {
	store *fakeMessageStore
}

func (f *fakeRepository) NewClient(_ bool) (botRepository.Client, error) {
	return botRepository.Client{
		Messages: f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeUtils struct{ next int }

func (f *fakeUtils) NewULIDFromTimestamp(_ time.Time) (string, error) {
	f.next++
	return "01TESTULID" + string(rune('A'+f.next)), nil
}

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestService(messenger *fakeMessenger, completionClient *fakeCompletion) (*botService, *fakeMessageStore, *fakeRedis) {
	store := &fakeMessageStore{}
	red := newFakeRedis()

	svc := &botService{
		log:        silentLogger(),
		botRepo:    &fakeRepository{store: store},
		redis:      red,
		messenger:  messenger,
		completion: completionClient,
		processor:  nlp.NewProcessor(),
		utils:      &fakeUtils{},
	}
	return svc, store, red
}

func textUpdate(updateID, chatID int64, text string) bot.Update {
	return bot.Update{
		UpdateID: updateID,
		Message: &bot.Message{
			MessageID: updateID,
			Chat:      bot.Chat{ID: chatID},
			Text:      text,
		},
	}
}

func TestProcessUpdateFlightSearch(t *testing.T) {
	messenger := &fakeMessenger{}
	svc, store, _ := newTestService(messenger, &fakeCompletion{})

	err := svc.ProcessUpdate(context.Background(), textUpdate(1, 42, "flight chennai to mumbai on 15/8/2025"))
	require.NoError(t, err)

	require.Len(t, messenger.sent, 1)
	reply := messenger.sent[0].text
	assert.Equal(t, int64(42), messenger.sent[0].chatID)
	assert.Contains(t, reply, "*Flight Search Results*")
	assert.Contains(t, reply, "Chennai (MAA) → Mumbai (BOM)")
	assert.Contains(t, reply, "*Travel Date:* 15/08/2025")
	assert.Contains(t, reply, "origin=MAA")
	assert.Contains(t, reply, "destination=BOM")
	assert.Contains(t, reply, "travel_date=2025-08-15")
	assert.Contains(t, reply, "codemagen.net/flights → MAA to BOM")

	require.Len(t, store.created, 1)
	assert.Equal(t, "flight_search", store.created[0].Intent)
	assert.Equal(t, reply, store.created[0].Reply)
}

func TestProcessUpdateAccountPage(t *testing.T) {
	messenger := &fakeMessenger{}
	svc, store, _ := newTestService(messenger, &fakeCompletion{})

	err := svc.ProcessUpdate(context.Background(), textUpdate(2, 7, "show my bookings"))
	require.NoError(t, err)

	require.Len(t, messenger.sent, 1)
	reply := messenger.sent[0].text
	assert.Contains(t, reply, "*My Bookings*")
	assert.Contains(t, reply, "https://www.codemagen.net/myaccounts/bookings")
	assert.Contains(t, reply, "access your my bookings page")

	require.Len(t, store.created, 1)
	assert.Equal(t, "account_page", store.created[0].Intent)
}

func TestProcessUpdateGeneralQuery(t *testing.T) {
	messenger := &fakeMessenger{}
	completionClient := &fakeCompletion{reply: "Codemagen builds travel technology."}
	svc, _, _ := newTestService(messenger, completionClient)

	err := svc.ProcessUpdate(context.Background(), textUpdate(3, 7, "what services do you offer"))
	require.NoError(t, err)

	require.Len(t, completionClient.asked, 1)
	assert.Equal(t, "what services do you offer", completionClient.asked[0])
	require.Len(t, messenger.sent, 1)
	assert.Equal(t, "Codemagen builds travel technology.", messenger.sent[0].text)
}

func TestProcessUpdateCompletionFailure(t *testing.T) {
	messenger := &fakeMessenger{}
	completionClient := &fakeCompletion{err: errors.New("connection refused")}
	svc, _, _ := newTestService(messenger, completionClient)

	err := svc.ProcessUpdate(context.Background(), textUpdate(4, 7, "tell me about hotels in goa please"))
	require.NoError(t, err)

	require.Len(t, messenger.sent, 1)
	assert.Equal(t,
		"Sorry, I encountered an error: connection refused. Please try again later.",
		messenger.sent[0].text)
}

func TestProcessUpdateStartCommand(t *testing.T) {
	messenger := &fakeMessenger{}
	svc, store, _ := newTestService(messenger, &fakeCompletion{})

	err := svc.ProcessUpdate(context.Background(), textUpdate(5, 9, "/start"))
	require.NoError(t, err)

	require.Len(t, messenger.sent, 1)
	assert.True(t, strings.HasPrefix(messenger.sent[0].text, "👋 Hello! I'm Codemagen's AI assistant."))
	assert.Empty(t, store.created)
}

func TestProcessUpdateSkipsEmptyAndNilMessages(t *testing.T) {
	messenger := &fakeMessenger{}
	svc, store, _ := newTestService(messenger, &fakeCompletion{})

	require.NoError(t, svc.ProcessUpdate(context.Background(), bot.Update{UpdateID: 6}))
	require.NoError(t, svc.ProcessUpdate(context.Background(), textUpdate(7, 9, "")))

	assert.Empty(t, messenger.sent)
	assert.Empty(t, store.created)
}

func TestProcessUpdateDeduplicatesRedeliveries(t *testing.T) {
	messenger := &fakeMessenger{}
	svc, _, red := newTestService(messenger, &fakeCompletion{})

	update := textUpdate(8, 9, "show my bookings")
	require.NoError(t, svc.ProcessUpdate(context.Background(), update))
	require.NoError(t, svc.ProcessUpdate(context.Background(), update))

	assert.Len(t, messenger.sent, 1)
	assert.True(t, red.seen[8])
}

func TestProcessUpdateDeliveryFailureStillRecorded(t *testing.T) {
	messenger := &fakeMessenger{sendErr: errors.New("telegram unreachable")}
	svc, store, red := newTestService(messenger, &fakeCompletion{})

	err := svc.ProcessUpdate(context.Background(), textUpdate(9, 9, "show my bookings"))
	require.NoError(t, err)

	assert.True(t, red.seen[9])
	require.Len(t, store.created, 1)
}

func TestGetMessageHistoryPaginates(t *testing.T) {
	messenger := &fakeMessenger{}
	svc, store, _ := newTestService(messenger, &fakeCompletion{})

	for i := 0; i < 5; i++ {
		store.created = append(store.created, entity.ChatMessage{
			ID:     string(rune('a' + i)),
			ChatID: 11,
			Text:   "msg",
			Intent: "general_query",
		})
	}

	history, total, err := svc.GetMessageHistory(context.Background(), 11, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, history, 2)
	assert.Equal(t, "c", history[0].ID)
}

func TestGetMessage(t *testing.T) {
	svc, store, _ := newTestService(&fakeMessenger{}, &fakeCompletion{})

	store.created = append(store.created, entity.ChatMessage{
		ID:     "m1",
		ChatID: 3,
		Text:   "show my bookings",
		Intent: "account_page",
		Reply:  "reply text",
	})

	msg, err := svc.GetMessage(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, "show my bookings", msg.Text)
	assert.Equal(t, "account_page", msg.Intent)

	_, err = svc.GetMessage(context.Background(), "missing")
	assert.ErrorIs(t, err, bot.ErrMessageNotFound)
}

func TestTestClassification(t *testing.T) {
	svc, _, _ := newTestService(&fakeMessenger{}, &fakeCompletion{})

	resp, err := svc.TestClassification(context.Background(), bot.ClassifyRequest{Text: "book a flight from delhi to goa"})
	require.NoError(t, err)
	assert.Equal(t, nlp.IntentFlightSearch, resp.Classification.Intent)
	assert.Equal(t, "delhi", resp.Entities.Origin)
	assert.Equal(t, "goa", resp.Entities.Destination)

	_, err = svc.TestClassification(context.Background(), bot.ClassifyRequest{})
	assert.ErrorIs(t, err, bot.ErrEmptyMessageText)
}

func TestRegisterWebhook(t *testing.T) {
	messenger := &fakeMessenger{}
	svc, _, _ := newTestService(messenger, &fakeCompletion{})

	t.Setenv("WEBHOOK_URL", "https://bot.example.com")
	require.NoError(t, svc.RegisterWebhook(context.Background()))
	assert.Equal(t, "https://bot.example.com/webhook", messenger.webhook)

	t.Setenv("WEBHOOK_URL", "")
	assert.ErrorIs(t, svc.RegisterWebhook(context.Background()), bot.ErrWebhookNotConfigured)
}
