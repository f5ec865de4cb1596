package discord

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
	"github.com/KirkDiggler/pokebattle-bot/internal/services"
	"github.com/KirkDiggler/pokebattle-bot/internal/services/battle"
	"github.com/KirkDiggler/pokebattle-bot/internal/services/capture"
	"github.com/KirkDiggler/pokebattle-bot/internal/services/roster"
)

// CommandName is the root slash command
const CommandName = "poke"

const interactionTimeout = 10 * time.Second

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil || cfg.ServiceProvider == nil {
		panic("service provider is required")
	}
	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
	}
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	var (
		data *discordgo.InteractionResponseData
		err  error
	)

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name != CommandName {
			return
		}
		data, err = h.handleCommand(ctx, i)
	case discordgo.InteractionMessageComponent:
		if !strings.HasPrefix(i.MessageComponentData().CustomID, turnButtonPrefix) {
			return
		}
		data, err = h.handleComponent(ctx, i)
	default:
		return
	}

	if err != nil {
		data = errorResponse(err)
	}

	if respondErr := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}); respondErr != nil {
		log.Printf("[DISCORD] Failed to respond to interaction: %v", respondErr)
	}
}

// handleCommand routes a /poke subcommand to its service
func (h *Handler) handleCommand(ctx context.Context, i *discordgo.InteractionCreate) (*discordgo.InteractionResponseData, error) {
	sub := subcommand(i)
	if sub == nil {
		return nil, apperr.InvalidArgument("pick a subcommand, e.g. `/poke team`")
	}

	trainer := trainerID(i)
	if trainer == "" {
		return nil, apperr.PermissionDenied("could not tell who you are")
	}

	opts := sub.Options
	switch sub.Name {
	case "starter":
		return h.starter(ctx, trainer, intOption(opts, "pokemon"))
	case "team":
		return h.team(ctx, trainer)
	case "wild":
		return h.wild(ctx)
	case "moves":
		return h.moves(ctx, stringOption(opts, "pokemon"))
	case "attack":
		return h.attack(ctx, &battle.ResolveTurnInput{
			TrainerID:  trainer,
			AttackerID: stringOption(opts, "attacker"),
			DefenderID: stringOption(opts, "target"),
			Selector:   selectorFromOptions(opts),
		})
	case "capture":
		return h.capture(ctx, &capture.ResolveCaptureInput{
			TrainerID: trainer,
			TargetID:  stringOption(opts, "target"),
			ItemName:  stringOptionOr(opts, "ball", "poke-ball"),
		})
	case "bag":
		return h.bag(ctx, trainer)
	}

	return nil, apperr.InvalidArgumentf("unknown subcommand %q", sub.Name)
}

// handleComponent replays a turn from one of the move buttons
func (h *Handler) handleComponent(ctx context.Context, i *discordgo.InteractionCreate) (*discordgo.InteractionResponseData, error) {
	button, err := DecodeTurnButton(i.MessageComponentData().CustomID)
	if err != nil {
		return nil, err
	}

	trainer := trainerID(i)
	if trainer == "" {
		return nil, apperr.PermissionDenied("could not tell who you are")
	}

	return h.attack(ctx, &battle.ResolveTurnInput{
		TrainerID:  trainer,
		AttackerID: button.AttackerID,
		DefenderID: button.DefenderID,
		Selector:   battle.MoveSelector{MoveID: button.MoveID},
	})
}

func (h *Handler) starter(ctx context.Context, trainer string, speciesID int) (*discordgo.InteractionResponseData, error) {
	result, err := h.ServiceProvider.RosterService.ChooseStarter(ctx, &roster.ChooseStarterInput{
		TrainerID: trainer,
		SpeciesID: speciesID,
	})
	if err != nil {
		return nil, err
	}
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{buildStarterEmbed(result)},
	}, nil
}

func (h *Handler) team(ctx context.Context, trainer string) (*discordgo.InteractionResponseData, error) {
	team, err := h.ServiceProvider.RosterService.ListTeam(ctx, trainer)
	if err != nil {
		return nil, err
	}
	if len(team) == 0 {
		return &discordgo.InteractionResponseData{
			Content: "📝 You don't have any pokemon yet. Use `/poke starter` to choose your first partner!",
			Flags:   discordgo.MessageFlagsEphemeral,
		}, nil
	}
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{buildMemberListEmbed("🎒 Your Team", team)},
		Flags:  discordgo.MessageFlagsEphemeral,
	}, nil
}

func (h *Handler) wild(ctx context.Context) (*discordgo.InteractionResponseData, error) {
	wild, err := h.ServiceProvider.RosterService.ListWild(ctx)
	if err != nil {
		return nil, err
	}
	if len(wild) == 0 {
		return &discordgo.InteractionResponseData{
			Content: "🌾 The tall grass is quiet. No wild pokemon around right now.",
		}, nil
	}
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{buildMemberListEmbed("🌾 Wild Pokemon", wild)},
	}, nil
}

func (h *Handler) moves(ctx context.Context, combatantID string) (*discordgo.InteractionResponseData, error) {
	if combatantID == "" {
		return nil, apperr.InvalidArgument("which pokemon? pass its id from `/poke team`")
	}
	moves, err := h.ServiceProvider.BattleService.ListActiveMoves(ctx, combatantID)
	if err != nil {
		return nil, err
	}
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{buildMovesEmbed(combatantID, moves)},
		Flags:  discordgo.MessageFlagsEphemeral,
	}, nil
}

func (h *Handler) attack(ctx context.Context, input *battle.ResolveTurnInput) (*discordgo.InteractionResponseData, error) {
	outcome, err := h.ServiceProvider.BattleService.ResolveTurn(ctx, input)
	if err != nil {
		return nil, err
	}

	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{buildTurnEmbed(outcome)},
	}
	if outcome.AttackerFainted || outcome.DefenderFainted {
		return data, nil
	}

	// offer the next move; a failure here only costs the buttons
	moves, err := h.ServiceProvider.BattleService.ListActiveMoves(ctx, outcome.AttackerID)
	if err != nil {
		log.Printf("[DISCORD] Failed to list moves for %s after turn: %v", outcome.AttackerID, err)
		return data, nil
	}
	data.Components = buildMoveButtons(outcome.AttackerID, outcome.DefenderID, moves)
	return data, nil
}

func (h *Handler) capture(ctx context.Context, input *capture.ResolveCaptureInput) (*discordgo.InteractionResponseData, error) {
	result, err := h.ServiceProvider.CaptureService.ResolveCapture(ctx, input)
	if err != nil {
		return nil, err
	}
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{buildCaptureEmbed(result)},
	}, nil
}

func (h *Handler) bag(ctx context.Context, trainer string) (*discordgo.InteractionResponseData, error) {
	balls, err := h.ServiceProvider.CaptureService.ListBalls(ctx, trainer)
	if err != nil {
		return nil, err
	}
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{buildBagEmbed(balls)},
		Flags:  discordgo.MessageFlagsEphemeral,
	}, nil
}

// errorResponse shows usage errors verbatim and hides everything else
// behind a generic message after logging it
func errorResponse(err error) *discordgo.InteractionResponseData {
	var content string
	switch {
	case apperr.IsUsage(err):
		content = fmt.Sprintf("❌ %s", err.Error())
	case apperr.Is(err, apperr.CodeUnavailable):
		log.Printf("[DISCORD] Unavailable: %v", err)
		content = "⏳ Something else changed that pokemon at the same time. Please try again."
	case apperr.IsIntegrity(err):
		log.Printf("[DISCORD] Integrity error: %v (meta: %v)", err, apperr.GetMeta(err))
		content = "❌ The game data for that pokemon is broken. This has been logged."
	default:
		log.Printf("[DISCORD] Unexpected error: %v", err)
		content = "❌ Something went wrong. Please try again."
	}

	return &discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	}
}

// trainerID is the Discord user behind an interaction, in a guild or a DM
func trainerID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
