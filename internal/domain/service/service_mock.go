package service

import (
	"math/rand"
	"testing"
	"time"

	"github.com/coffeepair/coffee-chat-bot/internal/domain/contract"
	"github.com/coffeepair/coffee-chat-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockConfigRepo  *mocks.MockChannelConfigRepo
	mockPairingRepo *mocks.MockPairingRepo
	mockPrefRepo    *mocks.MockPreferenceRepo
	mockSlackClient *mocks.MockSlackClient
}

// testNow is the fixed clock used across service tests: a Wednesday at noon UTC.
var testNow = time.Date(2025, time.March, 12, 12, 0, 0, 0, time.UTC)

func newServiceTestMock(t *testing.T) (m allMocks, svc contract.CoffeeChatService, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	configRepo := mocks.NewMockChannelConfigRepo(ctrl)
	dm.EXPECT().ChannelConfig().Return(configRepo).AnyTimes()

	pairingRepo := mocks.NewMockPairingRepo(ctrl)
	dm.EXPECT().Pairing().Return(pairingRepo).AnyTimes()

	prefRepo := mocks.NewMockPreferenceRepo(ctrl)
	dm.EXPECT().Preference().Return(prefRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager: dm,
		mockConfigRepo:  configRepo,
		mockPairingRepo: pairingRepo,
		mockPrefRepo:    prefRepo,
		mockSlackClient: slackClient,
	}

	svc = New(dm, slackClient, zap.NewNop(), Options{
		Location: time.UTC,
		Rand:     rand.New(rand.NewSource(1)),
		Now:      func() time.Time { return testNow },
	})
	require.NotNil(t, svc)

	return
}
