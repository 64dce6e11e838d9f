package app

import "github.com/louisbranch/emberfall/internal/platform/i18n/catalog"

// messages builds the player-facing copy for the host conversation.
func messages() (*catalog.Bundle, error) {
	return catalog.New(map[string]map[string]string{
		"en-US": {
			"conversation.welcome":         "Welcome to the creeper den.",
			"conversation.name_prompt":     "Name your creeper.",
			"conversation.name_invalid":    "Creeper names cannot be empty.",
			"conversation.power_prompt":    "Charge the creeper? (yes/no)",
			"conversation.power_invalid":   "Answer yes or no.",
			"conversation.power_applied":   "The creeper crackles with energy.",
			"conversation.power_removed":   "The creeper settles down.",
			"conversation.power_cancelled": "A ward suppresses the change.",
			"conversation.player_only":     "Only players may tend creepers.",
		},
		"pt-BR": {
			"conversation.welcome":         "Bem-vindo ao covil dos creepers.",
			"conversation.name_prompt":     "Dê um nome ao seu creeper.",
			"conversation.name_invalid":    "O nome do creeper não pode ficar vazio.",
			"conversation.power_prompt":    "Energizar o creeper? (yes/no)",
			"conversation.power_invalid":   "Responda yes ou no.",
			"conversation.power_applied":   "O creeper crepita com energia.",
			"conversation.power_removed":   "O creeper se acalma.",
			"conversation.power_cancelled": "Uma proteção suprime a mudança.",
			"conversation.player_only":     "Somente jogadores podem cuidar de creepers.",
		},
	})
}
