// chatbot — детерминированный чат-бот маркетингового сайта.
//
// Ответ подбирается по упорядоченной таблице правил: первое правило, чей
// ключ является подстрокой нормализованного ввода, выигрывает. Совпадение
// зависит от порядка объявления: ключ, являющийся подстрокой более
// специфичного ключа ниже по списку, может его затенить. Это поведение
// исходного виджета, оно сохранено намеренно — см. DESIGN.md.
package chatbot

import "strings"

// Rule — пара (ключ, ответ). Ключ сравнивается с нормализованным вводом
// как подстрока.
type Rule struct {
	Key   string
	Reply string
}

// Responder — responder по упорядоченной таблице правил.
type Responder struct {
	rules        []Rule
	defaultReply string
}

// NewResponder создаёт responder. Порядок rules значим.
func NewResponder(rules []Rule, defaultReply string) *Responder {
	return &Responder{rules: rules, defaultReply: defaultReply}
}

// DefaultRules — таблица ответов виджета сайта.
var DefaultRules = []Rule{
	{Key: "hello", Reply: "👋 Hello! I'm Segmento Bot 🤖 — your smart assistant for data security & intelligence!"},
	{Key: "products", Reply: "📦 Our Products:\n• Segmento Sense – AI data classification\n• Segmento Pulse – Compliance & risk insights"},
	{Key: "pricing", Reply: "💰 Pricing is flexible based on your needs.\nVisit the *Pricing page* to explore plans that scale with you 🚀"},
	{Key: "usecases", Reply: "📌 Use Cases:\n• Banking & Finance\n• Healthcare data protection\n• SaaS compliance\n• Enterprise data governance"},
	{Key: "contact", Reply: "📞 Contact us anytime at *contact@segmento.com* or via the contact form — we'd love to help! 😊"},
}

// DefaultReply — ответ при отсутствии совпадений.
const DefaultReply = "🤔 I didn't quite get that.\nYou can ask me about products, solutions, pricing, features, or use cases** 💡"

// NewDefaultResponder — responder с таблицей сайта.
func NewDefaultResponder() *Responder {
	return NewResponder(DefaultRules, DefaultReply)
}

// Respond подбирает ответ на текст пользователя.
//
// Нормализация — только lower-case всего ввода; пунктуация и токенизация
// не трогаются. Пустой (после trim) ввод — no-op: ok=false, ответа нет.
// Побочных эффектов и сетевых вызовов нет.
func (r *Responder) Respond(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}

	normalized := strings.ToLower(text)

	for _, rule := range r.rules {
		if strings.Contains(normalized, rule.Key) {
			return rule.Reply, true
		}
	}

	return r.defaultReply, true
}
