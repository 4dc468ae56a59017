package service

import (
	"math/rand/v2"
	"strings"
	"sync"
)

type ChatService interface {
	Reply(message string) string
}

type chatRule struct {
	keywords []string
	reply    string
}

// Rules are matched in order, the first rule with a keyword contained in the message wins.
var chatRules = []chatRule{
	{
		keywords: []string{"сложност", "уров", "difficult", "level"},
		reply:    "There are three difficulty levels: easy plays random moves, medium slips now and then, hard searches three moves ahead.",
	},
	{
		keywords: []string{"правил", "как игра", "rules", "how to play"},
		reply:    "You play X and the computer plays O. Put three of your marks in a row, column or diagonal. You always move first.",
	},
	{
		keywords: []string{"побед", "выигра", "win"},
		reply:    "To win, line up three X marks. Easy and medium leave openings, hard rarely does.",
	},
	{
		keywords: []string{"ничь", "tie", "draw"},
		reply:    "A draw happens when every cell is filled and nobody has three in a row. It can happen on any level.",
	},
	{
		keywords: []string{"совет", "помощ", "tip", "help"},
		reply:    "Tip: take the centre and the corners, and block every two-in-a-row the computer builds.",
	},
	{
		keywords: []string{"привет", "здравствуй", "hello", "hi "},
		reply:    "Hi! I can tell you about the rules, the difficulty levels and a bit of strategy. What would you like to know?",
	},
	{
		keywords: []string{"спасибо", "thank"},
		reply:    "You're welcome! Ask again any time. Good luck!",
	},
}

var defaultReplies = []string{
	"Interesting question! I can tell you more about the rules.",
	"I'm here to help with tic-tac-toe. What are you curious about?",
	"Try a few games on different difficulty levels!",
	"Tic-tac-toe is a classic game of strategy and attention.",
}

type chatService struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewChatService(rnd *rand.Rand) ChatService {
	return &chatService{rnd: rnd}
}

func (that *chatService) Reply(message string) string {
	normalized := strings.ToLower(message) + " "

	for _, rule := range chatRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(normalized, keyword) {
				return rule.reply
			}
		}
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return defaultReplies[that.rnd.IntN(len(defaultReplies))]
}
