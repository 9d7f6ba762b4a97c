package registry

// Strategies authored for the first side; opponent squares are given in the
// same frame.
var builtinStrategies = []RawDefinition{
	{
		Name:          "3七銀戦法",
		Category:      "居飛車",
		Description:   "矢倉戦における急戦策。銀を3七に配置。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			exact("玉", 0.2, "8八", "7九"),
			exact("飛", 0.2, "2八"),
			exact("金", 0.2, "7八"),
			exact("銀", 0.2, "7七"),
			exact("銀", 0.2, "3七"),
		},
	},
	{
		Name:          "脇システム",
		Category:      "居飛車",
		Description:   "脇謙二九段が考案した矢倉戦法。角を4六に配置。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			exact("玉", 0.15, "8八", "7九"),
			exact("角", 0.2, "4六"),
			exact("金", 0.1, "7八"),
			exact("金", 0.1, "6七"),
			exact("銀", 0.1, "7七"),
			on("銀", 0.15, "3七"),
			optional(theirs("角", 0.2, "6四")),
		},
	},
	{
		Name:          "森下システム",
		Category:      "居飛車",
		Description:   "森下卓九段が考案した矢倉戦法。角を6八に引く。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			exact("玉", 0.15, "8八", "7九"),
			exact("角", 0.2, "6八"),
			exact("金", 0.15, "7八"),
			exact("金", 0.15, "6七"),
			exact("銀", 0.15, "7七"),
		},
	},
	{
		Name:          "雀刺し",
		Category:      "居飛車",
		Description:   "端攻めを狙う戦法。1筋に飛車と香を集中。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("飛", 0.3, "1八"),
			on("金", 0.15, "7八"),
			on("金", 0.15, "5八"),
			exact("香", 0.2, "1七"),
			exact("歩", 0.2, "1六"),
		},
	},
	{
		Name:          "米長流急戦矢倉",
		Category:      "居飛車",
		Description:   "米長邦雄永世棋聖が考案した急戦策。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.15, "6九", "7八"),
			exact("角", 0.2, "8八"),
			on("金", 0.15, "7八"),
			on("金", 0.15, "5八"),
			exact("銀", 0.2, "6六"),
			exact("歩", 0.15, "5六"),
		},
	},
	{
		Name:          "カニカニ銀",
		Category:      "居飛車",
		Description:   "児玉孝一七段が考案。銀2枚をカニのハサミのように配置。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.15, "5九"),
			exact("飛", 0.15, "5八"),
			on("金", 0.1, "6九"),
			on("金", 0.1, "4九"),
			exact("銀", 0.2, "6六"),
			exact("銀", 0.2, "4六"),
			exact("歩", 0.1, "5六"),
		},
	},
	{
		Name:          "中原流急戦矢倉",
		Category:      "居飛車",
		Description:   "中原誠十六世名人が考案した急戦策。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			exact("玉", 0.2, "6九", "7八"),
			on("角", 0.2, "8八"),
			on("金", 0.2, "7八"),
			exact("金", 0.25, "4七"),
			on("歩", 0.15, "6七"),
		},
	},
	{
		Name:          "矢倉中飛車",
		Category:      "居飛車",
		Description:   "矢倉模様から中飛車に振る戦法。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			exact("玉", 0.15, "6九"),
			exact("飛", 0.3, "5八"),
			on("角", 0.15, "8八"),
			on("金", 0.1, "7八"),
			on("銀", 0.15, "5七"),
			on("歩", 0.15, "6七"),
		},
	},
	{
		Name:          "右四間飛車",
		Category:      "居飛車",
		Description:   "飛車を4筋に振って攻める急戦策。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			onFiles("飛", 0.6, 4),
			exact("歩", 0.4, "4六"),
			on("銀", 0.4, "5六"),
		},
	},
	{
		Name:          "原始棒銀",
		Category:      "居飛車",
		Description:   "銀を2筋に棒のように進める単純明快な急戦策。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.15, "5九"),
			onFiles("飛", 0.2, 2),
			exact("銀", 0.45, "2六", "2七", "3五", "1五"),
			on("歩", 0.2, "2五"),
		},
	},
	{
		Name:          "右玉",
		Category:      "居飛車",
		Description:   "玉を右側に配置する持久戦向きの戦法。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.4, "4八", "3八"),
			on("飛", 0.2, "2九", "2八"),
			on("銀", 0.2, "4七"),
			on("桂", 0.2, "3七"),
		},
	},
	{
		Name:          "かまいたち戦法",
		Category:      "居飛車",
		Description:   "銀を7九に残す独特の戦法。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.1, "5九"),
			on("金", 0.1, "6九"),
			on("金", 0.1, "4九"),
			on("銀", 0.15, "7九"),
			exact("銀", 0.3, "5七"),
			on("歩", 0.1, "7六"),
			on("歩", 0.15, "5六"),
		},
	},
	{
		Name:          "パックマン戦法",
		Category:      "後手番限定",
		Description:   "3手目まで。後手番限定の奇襲戦法。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("歩", 0.3, "7六"),
			theirsExact("歩", 0.3, "4四"),
			theirsExact("歩", 0.4, "3三"),
		},
	},
	{
		Name:          "新米長玉",
		Category:      "後手番限定",
		Description:   "後手番限定。玉を6二に配置。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			theirsExact("玉", 1.0, "6二"),
			theirsExact("飛", 1.0, "8二"),
			theirsExact("銀", 1.0, "7一"),
		},
	},
	{
		Name:          "角換わり",
		Category:      "居飛車",
		Description:   "角を交換して持ち合う相居飛車の戦型。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("歩", 0.1, "7六"),
			on("歩", 0.1, "6七"),
			on("歩", 0.1, "2五"),
			inHand("角", 0.4),
			theirs("銀", 0.1, "3三"),
			theirs("歩", 0.1, "3四"),
			theirs("歩", 0.1, "4三"),
		},
	},
	{
		Name:          "腰掛け銀",
		Category:      "居飛車",
		Description:   "銀を5六に「腰掛ける」ように配置する戦法。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			onFiles("飛", 0.15, 2),
			on("金", 0.1, "5八"),
			on("金", 0.1, "7八"),
			on("銀", 0.1, "7七"),
			on("銀", 0.4, "5六"),
			on("歩", 0.15, "7六"),
		},
	},
	{
		Name:          "早繰り銀",
		Category:      "居飛車",
		Description:   "銀を早く繰り出して攻める急戦策。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			onFiles("飛", 0.15, 2),
			on("銀", 0.4, "4六"),
			on("歩", 0.05, "7六"),
			on("歩", 0.05, "6七"),
			on("歩", 0.05, "5七"),
			on("歩", 0.05, "4七"),
			on("歩", 0.05, "3六"),
			on("歩", 0.1, "2五"),
		},
	},
	{
		Name:          "筋違い角",
		Category:      "居飛車",
		Description:   "角を4五に打ち込む奇襲戦法。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("角", 0.5, "4五"),
			on("歩", 0.15, "7六"),
			optional(theirs("銀", 0.2, "2二")),
			optional(theirs("歩", 0.15, "3四")),
		},
	},
	{
		Name:          "相掛かり",
		Category:      "相掛かり",
		Description:   "お互いに飛車先の歩を交換する戦型。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("金", 0.15, "7八"),
			on("歩", 0.25, "2五"),
			on("歩", 0.1, "7七"),
			theirs("金", 0.15, "3二"),
			theirs("歩", 0.25, "8五"),
			theirs("歩", 0.1, "3三"),
		},
	},
	{
		Name:          "横歩取り",
		Category:      "相掛かり",
		Description:   "相掛かりから横歩を取る激しい戦型。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("飛", 0.25, "3四"),
			on("角", 0.1, "8八"),
			on("金", 0.1, "7八"),
			on("銀", 0.05, "7九"),
			on("歩", 0.05, "7六"),
			theirs("飛", 0.25, "8六"),
			theirs("角", 0.05, "2二"),
			theirs("金", 0.05, "3二"),
			theirs("銀", 0.1, "3一"),
		},
	},
	{
		Name:          "3三角型空中戦法",
		Category:      "後手番限定",
		Description:   "後手番限定。角を3三に上がる横歩取りの一型。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("飛", 0.15, "3四"),
			on("角", 0.1, "8八"),
			on("金", 0.1, "7八"),
			on("銀", 0.05, "7九"),
			on("歩", 0.05, "7六"),
			theirs("飛", 0.15, "8六"),
			theirsExact("角", 0.25, "3三"),
			theirs("金", 0.05, "3二"),
			theirs("銀", 0.1, "3一"),
		},
	},
	{
		Name:          "嬉野流",
		Category:      "居飛車",
		Description:   "嬉野宏明氏が考案した力戦型戦法。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			exact("角", 0.25, "7九"),
			on("銀", 0.25, "6八"),
			exact("歩", 0.3, "7七"),
			on("歩", 0.2, "5六"),
		},
	},
	{
		Name:          "ゴキゲン中飛車",
		Category:      "振り飛車",
		Description:   "近藤正和六段が考案した中飛車戦法。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			onFiles("飛", 0.4, 5),
			on("角", 0.15, "8八"),
			on("歩", 0.15, "7六"),
			on("歩", 0.15, "6七"),
			on("歩", 0.15, "5六"),
		},
	},
	{
		Name:          "ツノ銀中飛車",
		Category:      "振り飛車",
		Description:   "角をツノのように7七に配置する中飛車。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			onFiles("飛", 0.2, 5),
			on("角", 0.2, "7七"),
			on("金", 0.1, "7八"),
			on("銀", 0.2, "6七"),
			on("銀", 0.2, "4七"),
			on("歩", 0.1, "5六"),
		},
	},
	{
		Name:          "四間飛車",
		Category:      "振り飛車",
		Description:   "飛車を6筋（四間）に振る代表的な振り飛車戦法。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			onFiles("飛", 0.5, 6),
			on("歩", 0.25, "6六"),
			on("歩", 0.25, "7六"),
		},
	},
	{
		Name:          "藤井システム",
		Category:      "振り飛車",
		Description:   "藤井猛九段が考案した四間飛車の一型。居飛車穴熊対策。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			exact("玉", 0.1, "5九"),
			onFiles("飛", 0.2, 6),
			on("金", 0.1, "5八"),
			on("金", 0.1, "4九"),
			on("銀", 0.15, "3八"),
			on("歩", 0.1, "6六"),
			on("歩", 0.25, "4六"),
		},
	},
	{
		Name:          "立石流",
		Category:      "振り飛車",
		Description:   "立石勝巳八段が考案した四間飛車の一型。浮き飛車にする。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.15, "2八"),
			onFiles("飛", 0.2, 6),
			on("角", 0.15, "8八"),
			on("金", 0.1, "7八"),
			on("歩", 0.2, "7五"),
			on("歩", 0.2, "6五"),
		},
	},
	{
		Name:          "レグスペ",
		Category:      "振り飛車",
		Description:   "四間飛車で早めに銀を7七に上げる戦法。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			onFiles("飛", 0.2, 6),
			exact("銀", 0.4, "7七"),
			on("歩", 0.2, "7六"),
			on("歩", 0.2, "6七"),
		},
	},
	{
		Name:          "三間飛車",
		Category:      "振り飛車",
		Description:   "飛車を7筋（三間）に振る振り飛車戦法。石田流への発展が可能。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			onFiles("飛", 0.6, 7),
			on("歩", 0.4, "7六"),
		},
	},
	{
		Name:          "石田流",
		Category:      "振り飛車",
		Description:   "飛車を7六に浮かせる三間飛車の発展形。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("飛", 0.25, "7六"),
			on("角", 0.15, "9七"),
			on("銀", 0.15, "6七"),
			on("桂", 0.15, "7七"),
			exact("歩", 0.15, "7五"),
			on("歩", 0.15, "6六"),
		},
	},
	{
		Name:          "早石田",
		Category:      "振り飛車",
		Description:   "4手目までに飛車を7五に浮かせる急戦策。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("歩", 1.0, "7五"),
			on("飛", 0.25, "7八", "7六"),
		},
	},
	{
		Name:          "鬼殺し",
		Category:      "奇襲",
		Description:   "桂馬を7七に跳ねる序盤の奇襲戦法。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			exact("桂", 0.5, "7七"),
			exact("歩", 0.25, "7六"),
			theirs("歩", 0.25, "3四"),
		},
	},
	{
		Name:          "ダイレクト向かい飛車",
		Category:      "振り飛車",
		Description:   "角交換後に8筋に飛車を振る戦法。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			onFiles("飛", 0.35, 8),
			inHand("角", 0.25),
			exact("銀", 0.2, "7七"),
			exact("歩", 0.1, "7六"),
			optional(theirs("飛", 0.1, "8二")),
		},
	},
	{
		Name:          "阪田流向飛車",
		Category:      "振り飛車",
		Description:   "阪田三吉が考案した向かい飛車。金を7七に上げる。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			onFiles("飛", 0.25, 8),
			inHand("角", 0.25),
			exact("金", 0.25, "7七"),
			on("歩", 0.1, "7六"),
			theirs("歩", 0.15, "8五"),
		},
	},
	{
		Name:          "向飛車",
		Category:      "振り飛車",
		Description:   "飛車を8筋（向かい側）に振る戦法。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			onFiles("飛", 0.3, 8),
			on("角", 0.2, "7七"),
			on("銀", 0.15, "6七"),
			on("歩", 0.1, "8七"),
			on("歩", 0.1, "7六"),
			on("歩", 0.15, "6六"),
		},
	},
	{
		Name:          "4五歩早仕掛け",
		Category:      "居飛車",
		Description:   "対振り飛車の急戦策。4筋の歩を突いて仕掛ける。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.1, "7八"),
			onFiles("飛", 0.15, 2),
			on("角", 0.1, "8八"),
			on("銀", 0.15, "4八"),
			on("桂", 0.15, "3七"),
			on("歩", 0.35, "4五"),
		},
	},
	{
		Name:          "超速",
		Category:      "居飛車",
		Description:   "対ゴキゲン中飛車の急戦策。銀を早く繰り出す。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.05, "6八"),
			onFiles("飛", 0.15, 2),
			on("角", 0.05, "8八"),
			on("金", 0.05, "6九"),
			on("金", 0.05, "4九"),
			on("銀", 0.05, "7九"),
			on("歩", 0.05, "7六"),
			on("歩", 0.05, "5六"),
			on("歩", 0.1, "3六"),
			on("歩", 0.1, "2五"),
			theirs("玉", 0.05, "7二"),
			theirsOnFiles("飛", 0.2, 5),
			optional(theirs("角", 0.05, "3三")),
			optional(theirs("歩", 0.05, "3四")),
		},
	},
	{
		Name:          "居飛車",
		Category:      "居飛車",
		Description:   "飛車を動かさない基本戦型。",
		MinConfidence: 0.5,
		Conditions: []RawCondition{
			onFiles("飛", 0.6, 2),
			optional(onFiles("玉", 0.4, 6, 7, 8, 9)),
		},
	},
	{
		Name:          "中飛車",
		Category:      "振り飛車",
		Description:   "飛車を5筋に振る戦法。",
		MinConfidence: 0.5,
		Conditions: []RawCondition{
			onFiles("飛", 0.5, 5),
			optional(onFiles("玉", 0.3, 1, 2, 3, 4)),
			optional(on("歩", 0.2, "5六")),
		},
	},
}
