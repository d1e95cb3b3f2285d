package game_models

// SuitcaseCard is one card of the fixed 36-card suitcase deck.
type SuitcaseCard struct {
	ID      string `json:"id"`
	Bottles int    `json:"bottles"` // 0-3
}

// EventEffect identifies the mechanical branch an event card triggers.
type EventEffect string

const (
	EffectNightShift      EventEffect = "night_shift"
	EffectHolidaySeason   EventEffect = "holiday_season"
	EffectTemptation      EventEffect = "temptation"
	EffectBirthday        EventEffect = "birthday"
	EffectSnifferDog      EventEffect = "sniffer_dog"
	EffectSuperiorOfficer EventEffect = "superior_officer"
	EffectTipOff          EventEffect = "tip_off"
	EffectBreakage        EventEffect = "breakage"
)

// EventCard is an entry of the immutable 8-card event catalog. One is drawn
// (with replacement) at the start of each round.
type EventCard struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	NameEn      string      `json:"nameEn"`
	Description string      `json:"description"`
	Effect      EventEffect `json:"effect"`
}

// EventCards is the full event catalog, with the localized texts shown to players.
var EventCards = []EventCard{
	{
		ID:          "night_shift",
		Name:        "夜班",
		NameEn:      "Night Shift",
		Description: "边境守卫在本回合获得一个额外的\"接受贿赂\"行动令牌",
		Effect:      EffectNightShift,
	},
	{
		ID:          "holiday_season",
		Name:        "假日季节",
		NameEn:      "Holiday Season",
		Description: "每个旅行者打包3个行李箱而不是2个（但仍只允许携带1瓶过境）",
		Effect:      EffectHolidaySeason,
	},
	{
		ID:          "temptation",
		Name:        "诱惑",
		NameEn:      "Temptation",
		Description: "边境守卫可以接受所有旅行者的贿赂（不限数量）",
		Effect:      EffectTemptation,
	},
	{
		ID:          "birthday",
		Name:        "生日",
		NameEn:      "Birthday",
		Description: "边境守卫获得2个瓶盖。本回合每位旅行者可以合法携带2瓶汽水过境",
		Effect:      EffectBirthday,
	},
	{
		ID:          "sniffer_dog",
		Name:        "嗅探犬",
		NameEn:      "Sniffer Dog",
		Description: "边境守卫选择一名旅行者，该旅行者必须展示装有最多瓶子的行李箱",
		Effect:      EffectSnifferDog,
	},
	{
		ID:          "superior_officer",
		Name:        "上级警官",
		NameEn:      "Superior Officer",
		Description: "边境守卫获得一个额外的\"检查行李箱\"令牌，可以用于已经检查过的旅行者",
		Effect:      EffectSuperiorOfficer,
	},
	{
		ID:          "tip_off",
		Name:        "线报",
		NameEn:      "Tip-Off",
		Description: "边境守卫获得一个额外的\"逮捕\"令牌，且错误逮捕时没有惩罚",
		Effect:      EffectTipOff,
	},
	{
		ID:          "breakage",
		Name:        "破损",
		NameEn:      "Breakage",
		Description: "边境守卫失去1个\"逮捕\"令牌。本回合合法携带限制变为0瓶",
		Effect:      EffectBreakage,
	},
}

// TokenType identifies one of the three border guard actions.
type TokenType string

const (
	TokenAcceptBribe     TokenType = "accept_bribe"
	TokenInspectSuitcase TokenType = "inspect_suitcase"
	TokenArrest          TokenType = "arrest"
)

// ActionToken is a single-use authorization for one guard decision per round.
type ActionToken struct {
	Type           TokenType `json:"type"`
	Used           bool      `json:"used"`
	TargetPlayerID string    `json:"targetPlayerId,omitempty"`
}
