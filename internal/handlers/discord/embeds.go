package discord

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
	"github.com/KirkDiggler/pokebattle-bot/internal/services/battle"
	"github.com/KirkDiggler/pokebattle-bot/internal/services/capture"
	"github.com/KirkDiggler/pokebattle-bot/internal/services/moveset"
	"github.com/KirkDiggler/pokebattle-bot/internal/services/roster"
)

const (
	colorInfo    = 0x3498db // Blue
	colorSuccess = 0x2ecc71 // Green
	colorDanger  = 0xe74c3c // Red
	colorWarning = 0xf39c12 // Orange
)

func buildStarterEmbed(result *roster.ChooseStarterResult) *discordgo.MessageEmbed {
	member := result.Member
	c := member.Combatant

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🎉 %s, I choose you!", member.Name()),
		Description: fmt.Sprintf("Your %s joined your team. You also received %d Poke Balls.",
			member.Name(), roster.StarterBalls),
		Color: colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			memberField(member),
			{
				Name:   "Stats",
				Value:  formatStats(c.Stats),
				Inline: false,
			},
		},
	}
	if !result.Created {
		embed.Title = fmt.Sprintf("%s is already your partner", member.Name())
		embed.Description = "You already chose a starter. Check `/poke team` to see everyone."
		embed.Color = colorInfo
	}
	return embed
}

func buildMemberListEmbed(title string, members []*roster.Member) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:  title,
		Color:  colorInfo,
		Fields: make([]*discordgo.MessageEmbedField, 0, len(members)),
	}
	for _, m := range members {
		embed.Fields = append(embed.Fields, memberField(m))
	}
	return embed
}

func memberField(m *roster.Member) *discordgo.MessageEmbedField {
	c := m.Combatant

	name := fmt.Sprintf("%s Lv.%d", m.Name(), c.Level)
	if !c.IsWild() && c.TeamPosition >= pokemon.TeamSize {
		name += " (storage)"
	}

	return &discordgo.MessageEmbedField{
		Name: name,
		Value: fmt.Sprintf("%s %d/%d HP • %s • %s\nID: `%s`",
			getHPBar(c.CurrentHP, c.MaxHP), c.CurrentHP, c.MaxHP,
			formatTypes(m.Species), formatStatus(c.Status), c.ID),
		Inline: false,
	}
}

func buildMovesEmbed(combatantID string, moves []*moveset.ActiveMove) *discordgo.MessageEmbed {
	var lines []string
	for _, m := range moves {
		lines = append(lines, fmt.Sprintf("**%s** (%s, %s) %d/%d PP • id `%d`",
			pokemon.DisplayName(m.Move.Name), m.Move.Type, formatPower(m.Move),
			m.Slot.CurrentPP, m.Slot.MaxPP, m.Move.ID))
	}

	return &discordgo.MessageEmbed{
		Title:       "📜 Active Moves",
		Description: strings.Join(lines, "\n"),
		Color:       colorInfo,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Pokemon %s", combatantID),
		},
	}
}

func buildTurnEmbed(outcome *battle.TurnOutcome) *discordgo.MessageEmbed {
	color := colorInfo
	switch {
	case outcome.DefenderFainted:
		color = colorSuccess
	case outcome.AttackerFainted:
		color = colorDanger
	case outcome.Blocked || outcome.Missed:
		color = colorWarning
	}

	embed := &discordgo.MessageEmbed{
		Title:       "⚔️ Battle",
		Description: strings.Join(outcome.Messages, "\n"),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Attacker",
				Value:  formatRemainingHP(outcome.AttackerHP),
				Inline: true,
			},
			{
				Name:   "Defender",
				Value:  formatRemainingHP(outcome.DefenderHP),
				Inline: true,
			},
		},
	}

	if outcome.Damage > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Damage",
			Value:  fmt.Sprintf("%d (x%.2g)", outcome.Damage, outcome.Multiplier),
			Inline: true,
		})
	}
	if outcome.PPMessage != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: outcome.PPMessage}
	}
	return embed
}

// buildMoveButtons offers one button per usable move to play the next turn
func buildMoveButtons(attackerID, defenderID string, moves []*moveset.ActiveMove) []discordgo.MessageComponent {
	var buttons []discordgo.MessageComponent
	for _, m := range moves {
		customID, err := (&TurnButton{AttackerID: attackerID, DefenderID: defenderID, MoveID: m.Move.ID}).Encode()
		if err != nil {
			log.Printf("[DISCORD] Skipping move button: %v", err)
			continue
		}
		buttons = append(buttons, discordgo.Button{
			Label:    fmt.Sprintf("%s (%d)", pokemon.DisplayName(m.Move.Name), m.Slot.CurrentPP),
			Style:    discordgo.PrimaryButton,
			CustomID: customID,
			Disabled: m.Slot.CurrentPP <= 0,
		})
	}
	if len(buttons) == 0 {
		return nil
	}
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}

func buildCaptureEmbed(result *capture.Result) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🔴 Capture",
		Description: result.Message,
		Color:       colorWarning,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Chance %.0f%% • %d left", result.Probability*100, result.ItemsRemaining),
		},
	}
	if result.Captured {
		embed.Color = colorSuccess
		if result.TeamPosition >= pokemon.TeamSize {
			embed.Description += "\nYour team is full, so it was sent to storage."
		}
	}
	return embed
}

func buildBagEmbed(balls []*capture.BallCount) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(balls))
	for _, b := range balls {
		lines = append(lines, fmt.Sprintf("%s: **%d**", b.Item.Name, b.Quantity))
	}
	return &discordgo.MessageEmbed{
		Title:       "🎒 Bag",
		Description: strings.Join(lines, "\n"),
		Color:       colorInfo,
	}
}

// getHPBar returns an emoji HP indicator
func getHPBar(current, max int) string {
	if max == 0 {
		return "💀"
	}
	percent := float64(current) / float64(max)
	if percent > 0.5 {
		return "🟢"
	} else if percent > 0.25 {
		return "🟡"
	} else if current > 0 {
		return "🔴"
	}
	return "💀"
}

func formatRemainingHP(hp int) string {
	if hp <= 0 {
		return "💀 fainted"
	}
	return fmt.Sprintf("%d HP", hp)
}

func formatTypes(species *pokemon.Species) string {
	names := make([]string, 0, len(species.Types))
	for _, t := range species.Types {
		names = append(names, pokemon.DisplayName(string(t)))
	}
	return strings.Join(names, "/")
}

func formatStatus(status pokemon.Status) string {
	if status == pokemon.StatusHealthy || status == "" {
		return "healthy"
	}
	return strings.ReplaceAll(string(status), "_", " ")
}

func formatPower(m *pokemon.Move) string {
	if !m.DealsDamage() {
		return "status"
	}
	return fmt.Sprintf("%d power", m.Power)
}

func formatStats(s pokemon.Stats) string {
	return fmt.Sprintf("Atk %d • Def %d • SpA %d • SpD %d • Spe %d",
		s.Attack, s.Defense, s.SpecialAttack, s.SpecialDefense, s.Speed)
}
