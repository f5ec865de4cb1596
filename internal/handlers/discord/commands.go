package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
)

// Commands returns the /poke command definition
func Commands() []*discordgo.ApplicationCommand {
	pokemonID := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "pokemon",
		Description: "Pokemon id from /poke team",
		Required:    true,
	}

	ballChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, 4)
	for _, item := range pokemon.CaptureItems() {
		ballChoices = append(ballChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  item.Name,
			Value: item.Key,
		})
	}

	typeChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(pokemon.AllTypes))
	for _, t := range pokemon.AllTypes {
		typeChoices = append(typeChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  pokemon.DisplayName(string(t)),
			Value: string(t),
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandName,
			Description: "Pokemon battle commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "starter",
					Description: "Choose your first pokemon",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "pokemon",
							Description: "Your partner",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Chikorita", Value: 152},
								{Name: "Cyndaquil", Value: 155},
								{Name: "Totodile", Value: 158},
							},
						},
					},
				},
				{
					Name:        "team",
					Description: "Show your team",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "wild",
					Description: "Show wild pokemon you can battle",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "moves",
					Description: "Show the active moves of one of your pokemon",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options:     []*discordgo.ApplicationCommandOption{pokemonID},
				},
				{
					Name:        "attack",
					Description: "Use a move against another pokemon",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "attacker",
							Description: "Your pokemon's id",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "target",
							Description: "Target pokemon's id",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "move",
							Description: "Move id from /poke moves (defaults to the first usable move)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "type",
							Description: "Type of an improvised move (needs power)",
							Choices:     typeChoices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "power",
							Description: "Power of an improvised move",
							MinValue:    floatPtr(1),
							MaxValue:    250,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "category",
							Description: "Category of an improvised move",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Physical", Value: string(pokemon.CategoryPhysical)},
								{Name: "Special", Value: string(pokemon.CategorySpecial)},
							},
						},
					},
				},
				{
					Name:        "capture",
					Description: "Throw a ball at a wild pokemon",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "target",
							Description: "Wild pokemon's id",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "ball",
							Description: "Ball to throw (defaults to Poke Ball)",
							Choices:     ballChoices,
						},
					},
				},
				{
					Name:        "bag",
					Description: "Show your balls",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
			},
		},
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range Commands() {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd); err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("[DISCORD] Registered command /%s", cmd.Name)
	}
	return nil
}

func floatPtr(v float64) *float64 {
	return &v
}
