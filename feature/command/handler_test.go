package command_test

import (
	"context"
	"errors"
	"testing"

	"guild-manager/core/discord"
	"guild-manager/core/discord/mocks"
	"guild-manager/core/reconcile"
	"guild-manager/feature/command"
	"guild-manager/feature/guild"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockApplier struct {
	mock.Mock
}

func (m *mockApplier) Apply(ctx context.Context, req guild.Request) (*guild.Result, error) {
	args := m.Called(ctx, req)
	if res, ok := args.Get(0).(*guild.Result); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

const setMessage = "~set ```yaml\nserver:\n  name: Study Hall\n  categories:\n    Text:\n      channels:\n        general:\n          name: general\n```"

func newHandler(session *mocks.Session, applier *mockApplier) *command.Handler {
	cfg := discord.Config{Prefix: "~", CooldownSeconds: 10}
	return command.NewHandler(session, applier, cfg, zap.NewNop())
}

func TestHandle_Set(t *testing.T) {
	session := new(mocks.Session)
	applier := new(mockApplier)

	session.On("ChannelMessageSend", "c1", command.ReplyConfiguring).Return(&discordgo.Message{}, nil).Once()
	session.On("ChannelMessageSend", "c1", command.ReplyFinished).Return(&discordgo.Message{}, nil).Once()
	applier.On("Apply", mock.Anything, mock.MatchedBy(func(req guild.Request) bool {
		return req.GuildID == "g1" &&
			req.Source == guild.SourceCommand &&
			req.Config.Server.Name == "Study Hall" &&
			string(req.Raw) == "server:\n  name: Study Hall\n  categories:\n    Text:\n      channels:\n        general:\n          name: general"
	})).Return(&guild.Result{Executed: 3}, nil)

	err := newHandler(session, applier).Handle(context.Background(), command.Message{
		ChannelID: "c1",
		GuildID:   "g1",
		Content:   setMessage,
	})
	require.NoError(t, err)
	session.AssertExpectations(t)
	applier.AssertExpectations(t)
}

func TestHandle_ApplyFailure(t *testing.T) {
	session := new(mocks.Session)
	applier := new(mockApplier)
	failure := &reconcile.PlatformError{Op: "create_channel", Target: "Text", Err: errors.New("Missing Permissions")}

	session.On("ChannelMessageSend", "c1", command.ReplyConfiguring).Return(&discordgo.Message{}, nil)
	session.On("ChannelMessageSend", "c1", "Could not complete the setup. create_channel Text: Missing Permissions").
		Return(&discordgo.Message{}, nil)
	applier.On("Apply", mock.Anything, mock.Anything).Return(&guild.Result{}, failure)

	err := newHandler(session, applier).Handle(context.Background(), command.Message{ChannelID: "c1", GuildID: "g1", Content: setMessage})
	require.NoError(t, err)
	session.AssertExpectations(t)
}

func TestHandle_UserErrors(t *testing.T) {
	tests := []struct {
		name  string
		msg   command.Message
		reply string
	}{
		{"Outside guild", command.Message{ChannelID: "dm", Content: setMessage}, command.ReplyOutsideGuild},
		{"Invalid YAML", command.Message{ChannelID: "c1", GuildID: "g1", Content: "~set server: ["}, command.ReplyInvalidYAML},
		{"Missing fields", command.Message{ChannelID: "c1", GuildID: "g1", Content: "~set server:\n  name: x"}, command.ReplyInvalidYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := new(mocks.Session)
			applier := new(mockApplier)
			session.On("ChannelMessageSend", tt.msg.ChannelID, tt.reply).Return(&discordgo.Message{}, nil)

			require.NoError(t, newHandler(session, applier).Handle(context.Background(), tt.msg))
			session.AssertExpectations(t)
			applier.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_Cooldown(t *testing.T) {
	session := new(mocks.Session)
	applier := new(mockApplier)
	session.On("ChannelMessageSend", "c1", mock.Anything).Return(&discordgo.Message{}, nil)
	applier.On("Apply", mock.Anything, mock.Anything).Return(&guild.Result{}, nil).Once()

	h := newHandler(session, applier)
	msg := command.Message{ChannelID: "c1", GuildID: "g1", Content: setMessage}

	require.NoError(t, h.Handle(context.Background(), msg))
	require.NoError(t, h.Handle(context.Background(), msg))

	applier.AssertNumberOfCalls(t, "Apply", 1)
	session.AssertCalled(t, "ChannelMessageSend", "c1", "This server was configured recently. Try again in 10 seconds.")
}

func TestHandle_Ignored(t *testing.T) {
	session := new(mocks.Session)
	applier := new(mockApplier)
	h := newHandler(session, applier)

	for _, content := range []string{"hello", "~ping me", "~set", "!set server: {}"} {
		require.NoError(t, h.Handle(context.Background(), command.Message{ChannelID: "c1", GuildID: "g1", Content: content}))
	}

	session.AssertNotCalled(t, "ChannelMessageSend", mock.Anything, mock.Anything)
	applier.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
}

func TestHandle_ReplyFailure(t *testing.T) {
	session := new(mocks.Session)
	applier := new(mockApplier)
	session.On("ChannelMessageSend", "c1", command.ReplyConfiguring).Return(nil, errors.New("rate limited"))

	err := newHandler(session, applier).Handle(context.Background(), command.Message{ChannelID: "c1", GuildID: "g1", Content: setMessage})
	assert.ErrorContains(t, err, "rate limited")
	applier.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
}

func TestOnMessageCreate_IgnoresBots(t *testing.T) {
	session := new(mocks.Session)
	applier := new(mockApplier)

	newHandler(session, applier).OnMessageCreate(nil, &discordgo.MessageCreate{Message: &discordgo.Message{
		ChannelID: "c1",
		GuildID:   "g1",
		Content:   setMessage,
		Author:    &discordgo.User{Bot: true},
	}})

	session.AssertNotCalled(t, "ChannelMessageSend", mock.Anything, mock.Anything)
}
