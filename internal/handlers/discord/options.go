package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/pokebattle-bot/internal/services/battle"
)

// subcommand returns the /poke subcommand option, or nil
func subcommand(i *discordgo.InteractionCreate) *discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 || options[0].Type != discordgo.ApplicationCommandOptionSubCommand {
		return nil
	}
	return options[0]
}

func findOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range options {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

// stringOption safely retrieves a string option value by name
func stringOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	opt := findOption(options, name)
	if opt == nil || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return opt.StringValue()
}

func stringOptionOr(options []*discordgo.ApplicationCommandInteractionDataOption, name, fallback string) string {
	if value := stringOption(options, name); value != "" {
		return value
	}
	return fallback
}

// intOption safely retrieves an integer option value by name
func intOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) int {
	opt := findOption(options, name)
	if opt == nil || opt.Type != discordgo.ApplicationCommandOptionInteger {
		return 0
	}
	return int(opt.IntValue())
}

// selectorFromOptions reads the move of /poke attack. A type together with
// a power describes an inline move; otherwise the move id (or none) is used.
func selectorFromOptions(options []*discordgo.ApplicationCommandInteractionDataOption) battle.MoveSelector {
	moveType := stringOption(options, "type")
	power := intOption(options, "power")
	if moveType != "" && power > 0 {
		return battle.MoveSelector{Inline: &battle.InlineMove{
			Type:     moveType,
			Power:    power,
			Category: stringOption(options, "category"),
		}}
	}
	return battle.MoveSelector{MoveID: intOption(options, "move")}
}
