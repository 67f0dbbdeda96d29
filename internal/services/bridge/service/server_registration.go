package service

import (
	"github.com/louisbranch/wyvernbridge/internal/services/bridge/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool registration is grouped by game concern. Every group receives the same
// shared connection and event buffer through domain.Deps.

func registerConnectionTools(server *mcp.Server, deps domain.Deps) {
	mcp.AddTool(server, domain.ConnectTool(), domain.ConnectHandler(deps))
	mcp.AddTool(server, domain.DisconnectTool(), domain.DisconnectHandler(deps))
	mcp.AddTool(server, domain.BridgeStatusTool(), domain.BridgeStatusHandler(deps))
}

func registerWorldTools(server *mcp.Server, deps domain.Deps) {
	mcp.AddTool(server, domain.LookTool(), domain.LookHandler(deps))
	mcp.AddTool(server, domain.MoveDirectionTool(), domain.MoveDirectionHandler(deps))
	mcp.AddTool(server, domain.MapTool(), domain.MapHandler(deps))
}

func registerCombatTools(server *mcp.Server, deps domain.Deps) {
	mcp.AddTool(server, domain.AttackTool(), domain.AttackHandler(deps))
	mcp.AddTool(server, domain.UseAbilityTool(), domain.UseAbilityHandler(deps))
	mcp.AddTool(server, domain.FleeTool(), domain.FleeHandler(deps))
	mcp.AddTool(server, domain.StatusTool(), domain.StatusHandler(deps))
}

func registerItemTools(server *mcp.Server, deps domain.Deps) {
	mcp.AddTool(server, domain.InventoryTool(), domain.InventoryHandler(deps))
	mcp.AddTool(server, domain.GetItemTool(), domain.GetItemHandler(deps))
	mcp.AddTool(server, domain.DropItemTool(), domain.DropItemHandler(deps))
	mcp.AddTool(server, domain.EquipTool(), domain.EquipHandler(deps))
	mcp.AddTool(server, domain.UseItemTool(), domain.UseItemHandler(deps))
}

func registerCommerceTools(server *mcp.Server, deps domain.Deps) {
	mcp.AddTool(server, domain.BuyTool(), domain.BuyHandler(deps))
	mcp.AddTool(server, domain.SellTool(), domain.SellHandler(deps))
	mcp.AddTool(server, domain.AcceptQuestTool(), domain.AcceptQuestHandler(deps))
	mcp.AddTool(server, domain.CompleteQuestTool(), domain.CompleteQuestHandler(deps))
	mcp.AddTool(server, domain.QuestsTool(), domain.QuestsHandler(deps))
}

func registerSocialTools(server *mcp.Server, deps domain.Deps) {
	mcp.AddTool(server, domain.SayTool(), domain.SayHandler(deps))
	mcp.AddTool(server, domain.TellTool(), domain.TellHandler(deps))
	mcp.AddTool(server, domain.ShoutTool(), domain.ShoutHandler(deps))
	mcp.AddTool(server, domain.EmoteTool(), domain.EmoteHandler(deps))
	mcp.AddTool(server, domain.WhoTool(), domain.WhoHandler(deps))
	mcp.AddTool(server, domain.ChannelTool(), domain.ChannelHandler(deps))
}

func registerPartyTools(server *mcp.Server, deps domain.Deps) {
	mcp.AddTool(server, domain.PartyInviteTool(), domain.PartyInviteHandler(deps))
	mcp.AddTool(server, domain.PartyAcceptTool(), domain.PartyAcceptHandler(deps))
	mcp.AddTool(server, domain.PartyLeaveTool(), domain.PartyLeaveHandler(deps))
	mcp.AddTool(server, domain.PartyKickTool(), domain.PartyKickHandler(deps))
	mcp.AddTool(server, domain.PartyListTool(), domain.PartyListHandler(deps))
	mcp.AddTool(server, domain.MatchmakeTool(), domain.MatchmakeHandler(deps))
}

func registerGuildTools(server *mcp.Server, deps domain.Deps) {
	mcp.AddTool(server, domain.GuildCreateTool(), domain.GuildCreateHandler(deps))
	mcp.AddTool(server, domain.GuildInviteTool(), domain.GuildInviteHandler(deps))
	mcp.AddTool(server, domain.GuildLeaveTool(), domain.GuildLeaveHandler(deps))
	mcp.AddTool(server, domain.GuildInfoTool(), domain.GuildInfoHandler(deps))
	mcp.AddTool(server, domain.GuildDepositTool(), domain.GuildDepositHandler(deps))
}

func registerNPCTools(server *mcp.Server, deps domain.Deps) {
	mcp.AddTool(server, domain.TalkTool(), domain.TalkHandler(deps))
	mcp.AddTool(server, domain.DialogueSelectTool(), domain.DialogueSelectHandler(deps))
}

func registerCompanionTools(server *mcp.Server, deps domain.Deps) {
	mcp.AddTool(server, domain.CompanionTool(), domain.CompanionHandler(deps))
	mcp.AddTool(server, domain.CompanionStatusTool(), domain.CompanionStatusHandler(deps))
	mcp.AddTool(server, domain.CompanionMemoryTool(), domain.CompanionMemoryHandler(deps))
	mcp.AddTool(server, domain.CompanionMemoryWriteTool(), domain.CompanionMemoryWriteHandler(deps))
}

func registerCharacterTools(server *mcp.Server, deps domain.Deps) {
	mcp.AddTool(server, domain.CharacterInfoTool(), domain.CharacterInfoHandler(deps))
	mcp.AddTool(server, domain.AbilitiesTool(), domain.AbilitiesHandler(deps))
	mcp.AddTool(server, domain.LeaderboardTool(), domain.LeaderboardHandler(deps))
	mcp.AddTool(server, domain.SuggestDescriptionTool(), domain.SuggestDescriptionHandler(deps))
}
