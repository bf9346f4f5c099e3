package mocks

import (
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
)

// Session is a mock implementation of discord.Session.
// Request options are not passed to Called since functions cannot be compared.
type Session struct {
	mock.Mock
}

func (m *Session) Guild(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error) {
	args := m.Called(guildID)
	if g, ok := args.Get(0).(*discordgo.Guild); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Session) GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error) {
	args := m.Called(guildID)
	if chs, ok := args.Get(0).([]*discordgo.Channel); ok {
		return chs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Session) GuildEdit(guildID string, g *discordgo.GuildParams, options ...discordgo.RequestOption) (*discordgo.Guild, error) {
	args := m.Called(guildID, g)
	if guild, ok := args.Get(0).(*discordgo.Guild); ok {
		return guild, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Session) RequestWithBucketID(method, urlStr string, data interface{}, bucketID string, options ...discordgo.RequestOption) ([]byte, error) {
	args := m.Called(method, urlStr, data, bucketID)
	if body, ok := args.Get(0).([]byte); ok {
		return body, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Session) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(channelID, content)
	if msg, ok := args.Get(0).(*discordgo.Message); ok {
		return msg, args.Error(1)
	}
	return nil, args.Error(1)
}
