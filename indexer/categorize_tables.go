package indexer

// Genre labels the catalog's filter buttons render.
const (
	CategoryActionAdventure = "动作冒险"
	CategoryRolePlaying     = "角色扮演"
	CategoryShooter         = "射击游戏"
	CategoryStrategy        = "策略游戏"
	CategoryHorror          = "恐怖游戏"
	CategorySimulation      = "模拟经营"
)

// DefaultCategorizerConfig returns the shipped rule set: franchise overrides
// for titles generic keyword scoring would misfile, keyword lists per genre
// in both Chinese and English, and the digit-name fallbacks.
func DefaultCategorizerConfig() CategorizerConfig {
	return CategorizerConfig{
		Overrides: []TitleOverride{
			{"生化危机", CategoryHorror}, {"resident evil", CategoryHorror},
			{"寂静岭", CategoryHorror}, {"silent hill", CategoryHorror},
			{"逃生", CategoryHorror}, {"outlast", CategoryHorror},
			{"死亡空间", CategoryHorror}, {"dead space", CategoryHorror},
			{"黑暗之魂", CategoryActionAdventure}, {"dark souls", CategoryActionAdventure},
			{"艾尔登法环", CategoryActionAdventure}, {"elden ring", CategoryActionAdventure},
			{"赛博朋克", CategoryActionAdventure}, {"cyberpunk", CategoryActionAdventure},
			{"只狼", CategoryActionAdventure}, {"sekiro", CategoryActionAdventure},
		},
		Rules: []CategoryRule{
			{
				Label: CategoryActionAdventure,
				Keywords: []string{
					"动作", "冒险", "格斗", "action", "adventure",
					"之魂", "souls", "战神", "god of war",
					"刺客信条", "assassin's creed", "鬼泣", "devil may cry",
					"怪物猎人", "monster hunter", "古墓丽影", "tomb raider",
					"荒野大镖客", "red dead",
				},
			},
			{
				Label: CategoryRolePlaying,
				Keywords: []string{
					"角色扮演", "rpg", "仙剑", "轨迹", "幻想", "fantasy",
					"巫师", "witcher", "上古卷轴", "elder scrolls",
					"辐射", "fallout", "暗黑破坏神", "diablo",
					"博德之门", "baldur's gate", "传说", "tales of",
				},
			},
			{
				Label: CategoryShooter,
				Keywords: []string{
					"射击", "fps", "枪", "使命召唤", "call of duty",
					"战地", "battlefield", "孤岛惊魂", "far cry",
					"无主之地", "borderlands", "狙击", "sniper",
					"毁灭战士", "doom", "光环", "halo",
				},
			},
			{
				Label: CategoryStrategy,
				Keywords: []string{
					"策略", "strategy", "战棋", "文明", "civilization",
					"全面战争", "total war", "帝国", "empire",
					"塔防", "tower defense", "要塞", "stronghold",
					"钢铁雄心", "hearts of iron",
				},
			},
			{
				Label: CategoryHorror,
				Keywords: []string{
					"恐怖", "horror", "惊悚", "僵尸", "zombie", "丧尸",
					"鬼", "evil", "噩梦", "nightmare", "诡", "港诡",
				},
			},
			{
				Label: CategorySimulation,
				Keywords: []string{
					"模拟", "经营", "simulator", "simulation", "tycoon",
					"大亨", "农场", "farming", "城市", "cities",
					"建造", "过山车", "动物园", "planet zoo",
				},
			},
		},
		Fallbacks: []TitleOverride{
			{"action", CategoryActionAdventure}, {"动作", CategoryActionAdventure},
			{"rpg", CategoryRolePlaying}, {"角色", CategoryRolePlaying},
			{"strategy", CategoryStrategy}, {"策略", CategoryStrategy},
		},
	}
}
