package registry

// Formations authored for the first side. Squares use Japanese notation.
var builtinFormations = []RawDefinition{
	{
		Name:          "カニ囲い",
		Category:      "居飛車",
		Description:   "居飛車の基本的な囲い。矢倉への発展途上の形。",
		MinConfidence: 0.9,
		Conditions: []RawCondition{
			on("玉", 0.3, "6九"),
			on("金", 0.25, "7八"),
			on("金", 0.25, "5八"),
			on("銀", 0.2, "6八"),
		},
	},
	{
		Name:          "矢倉",
		Category:      "居飛車",
		Description:   "相居飛車の代表的な囲い。金銀3枚で玉を守る。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			exact("金", 0.25, "7八"),
			on("銀", 0.25, "7七"),
			on("歩", 0.5, "6七"),
		},
	},
	{
		Name:          "金矢倉",
		Category:      "居飛車",
		Description:   "相居飛車の代表的な囲い。金銀3枚で玉を守る。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.3, "8八", "7九"),
			on("金", 0.25, "7八"),
			exact("金", 0.25, "6七"),
			on("銀", 0.2, "7七"),
		},
	},
	{
		Name:          "銀矢倉",
		Category:      "居飛車",
		Description:   "金矢倉の6七金を銀に換えた形。銀2枚で構成。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.3, "8八", "7九"),
			on("金", 0.25, "7八"),
			exact("銀", 0.25, "6七"),
			on("銀", 0.2, "7七"),
		},
	},
	{
		Name:          "片矢倉",
		Category:      "居飛車",
		Description:   "角換わりでよく用いられる囲い。玉が7八に位置する。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			exact("玉", 0.35, "7八"),
			on("金", 0.3, "6八"),
			on("金", 0.2, "6七"),
			on("銀", 0.15, "7七"),
		},
	},
	{
		Name:          "総矢倉",
		Category:      "居飛車",
		Description:   "矢倉の完成形。銀2枚を使った堅固な囲い。",
		MinConfidence: 0.75,
		Conditions: []RawCondition{
			on("玉", 0.25, "8八", "7九"),
			on("金", 0.2, "7八"),
			on("金", 0.2, "6七"),
			on("銀", 0.2, "7七"),
			exact("銀", 0.15, "5七"),
		},
	},
	{
		Name:          "矢倉穴熊",
		Category:      "居飛車",
		Description:   "矢倉から穴熊に発展させた形。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.3, "9九"),
			on("金", 0.25, "7八"),
			on("金", 0.2, "6七"),
			exact("銀", 0.15, "7七"),
			exact("香", 0.1, "9八"),
		},
	},
	{
		Name:          "菊水矢倉",
		Category:      "居飛車",
		Description:   "矢倉の変化形。玉が8九、銀が8八、桂が7七の形。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.3, "8九"),
			on("金", 0.25, "7八"),
			on("金", 0.2, "6七"),
			exact("銀", 0.15, "8八"),
			exact("桂", 0.1, "7七"),
		},
	},
	{
		Name:          "銀立ち矢倉",
		Category:      "居飛車",
		Description:   "銀を7六に立てた矢倉。攻撃的な形。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.35, "8八", "7九"),
			on("金", 0.25, "7八"),
			on("金", 0.25, "6七"),
			exact("銀", 0.15, "7六"),
		},
	},
	{
		Name:          "菱矢倉",
		Category:      "居飛車",
		Description:   "銀2枚を使った矢倉の発展形。菱形に配置。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.3, "8八", "7九"),
			on("金", 0.25, "7八"),
			on("金", 0.2, "6七"),
			exact("銀", 0.15, "7七"),
			exact("銀", 0.1, "6六"),
		},
	},
	{
		Name:          "雁木囲い",
		Category:      "居飛車",
		Description:   "階段状の駒配置が特徴。相居飛車で用いられる。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.25, "6九"),
			on("金", 0.2, "7八"),
			on("金", 0.2, "5八"),
			exact("銀", 0.2, "6七"),
			on("銀", 0.15, "5七"),
		},
	},
	{
		Name:          "ボナンザ囲い",
		Category:      "居飛車",
		Description:   "コンピュータ将棋ソフトBonanzaが好んだ囲い。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.35, "7八"),
			exact("金", 0.25, "6八"),
			on("金", 0.25, "5八"),
			on("銀", 0.15, "7七"),
		},
	},
	{
		Name:          "美濃囲い",
		Category:      "振り飛車",
		Description:   "振り飛車の代表的な囲い。横からの攻めに強い。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.35, "2八"),
			exact("金", 0.25, "5八"),
			on("金", 0.25, "4九"),
			on("銀", 0.15, "3八"),
		},
	},
	{
		Name:          "高美濃囲い",
		Category:      "振り飛車",
		Description:   "美濃囲いの金を4七に上げた形。上部が厚い。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.35, "2八"),
			exact("金", 0.25, "4七"),
			on("金", 0.25, "4九"),
			on("銀", 0.15, "3八"),
		},
	},
	{
		Name:          "振り飛車銀冠",
		Category:      "振り飛車",
		Description:   "美濃囲いから発展。銀が玉の冠のように2七に配置。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.4, "2八"),
			on("金", 0.35, "3八"),
			exact("銀", 0.25, "2七"),
		},
	},
	{
		Name:          "居飛車銀冠",
		Category:      "居飛車",
		Description:   "居飛車の銀冠。銀が8七に配置。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.4, "8八"),
			on("金", 0.35, "7八"),
			exact("銀", 0.25, "8七"),
		},
	},
	{
		Name:          "銀美濃",
		Category:      "振り飛車",
		Description:   "美濃囲いに銀を追加した堅固な形。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.3, "2八"),
			on("金", 0.25, "4九"),
			exact("銀", 0.25, "4七", "5八"),
			on("銀", 0.2, "3八"),
		},
	},
	{
		Name:          "ダイヤモンド美濃",
		Category:      "振り飛車",
		Description:   "金銀4枚を使ったダイヤモンド型の堅固な囲い。",
		MinConfidence: 0.75,
		Conditions: []RawCondition{
			on("玉", 0.25, "2八"),
			on("金", 0.2, "5八"),
			on("金", 0.2, "4九"),
			on("銀", 0.2, "3八"),
			exact("銀", 0.15, "4七"),
		},
	},
	{
		Name:          "木村美濃",
		Category:      "振り飛車",
		Description:   "木村義雄十四世名人が使った形。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.4, "2八"),
			exact("金", 0.35, "3八"),
			on("銀", 0.25, "4七"),
		},
	},
	{
		Name:          "片美濃囲い",
		Category:      "振り飛車",
		Description:   "美濃囲いの簡易形。手数が少ない。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.4, "2八"),
			on("金", 0.35, "4九"),
			on("銀", 0.25, "3八"),
			absent("金", 0.2, "5八"),
		},
	},
	{
		Name:          "ちょんまげ美濃",
		Category:      "振り飛車",
		Description:   "玉頭の歩を突いた美濃囲い。見た目がちょんまげに似る。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.3, "2八"),
			on("金", 0.25, "4九"),
			on("銀", 0.2, "3八"),
			on("歩", 0.15, "3七"),
			exact("歩", 0.1, "2六"),
		},
	},
	{
		Name:          "坊主美濃",
		Category:      "振り飛車",
		Description:   "玉頭の歩が消失した美濃囲い。玉頭が弱い。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.3, "2八"),
			on("金", 0.25, "4九"),
			on("銀", 0.2, "3八"),
			absent("歩", 0.0625, "2七"),
			absent("歩", 0.0625, "2六"),
			absent("歩", 0.0625, "2五"),
			absent("歩", 0.0625, "2四"),
		},
	},
	{
		Name:          "左美濃",
		Category:      "居飛車",
		Description:   "対振り飛車の囲い。美濃囲いを左右反転させた形。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.3, "8八"),
			on("金", 0.25, "5八"),
			on("金", 0.25, "6九"),
			exact("銀", 0.2, "7八"),
		},
	},
	{
		Name:          "天守閣美濃",
		Category:      "居飛車",
		Description:   "玉が8七に上がった左美濃の発展形。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			exact("玉", 0.4, "8七"),
			on("金", 0.3, "6九"),
			on("銀", 0.3, "7八"),
		},
	},
	{
		Name:          "四枚美濃",
		Category:      "居飛車",
		Description:   "金銀4枚を使った左美濃の発展形。",
		MinConfidence: 0.75,
		Conditions: []RawCondition{
			exact("玉", 0.3, "8七"),
			on("金", 0.25, "6九"),
			on("銀", 0.25, "7八"),
			exact("銀", 0.2, "7七"),
		},
	},
	{
		Name:          "舟囲い",
		Category:      "居飛車",
		Description:   "対振り飛車の基本的な囲い。手数が少なく急戦向き。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			exact("玉", 0.3, "7八"),
			exact("金", 0.25, "6九"),
			on("金", 0.25, "5八"),
			on("銀", 0.2, "7九"),
		},
	},
	{
		Name:          "エルモ囲い",
		Category:      "居飛車",
		Description:   "elmo（将棋AI）が好んで使った対振り飛車の囲い。角が8八に残る形。",
		MinConfidence: 0.6,
		Conditions: []RawCondition{
			on("玉", 0.25, "7八"),
			on("銀", 0.2, "6八"),
			exact("金", 0.2, "7九"),
			on("角", 0.15, "8八"),
			optional(on("銀", 0.1, "5七")),
			optional(on("金", 0.1, "5九")),
		},
	},
	{
		Name:          "居飛車穴熊",
		Category:      "居飛車",
		Description:   "対振り飛車の代表的な囲い。非常に堅固。",
		MinConfidence: 0.75,
		Conditions: []RawCondition{
			exact("玉", 0.3, "9九"),
			on("金", 0.25, "7九"),
			on("銀", 0.2, "8八"),
			on("桂", 0.15, "8九"),
			exact("香", 0.1, "9八"),
		},
	},
	{
		Name:          "松尾流穴熊",
		Category:      "居飛車",
		Description:   "松尾歩八段が開発した穴熊の変化形。",
		MinConfidence: 0.75,
		Conditions: []RawCondition{
			on("玉", 0.25, "9九"),
			on("金", 0.15, "6七"),
			on("金", 0.15, "7八"),
			absent("金", 0.15, "7九"),
			on("銀", 0.15, "7九"),
			on("銀", 0.15, "8八"),
			on("桂", 0.1, "8九"),
			on("香", 0.05, "9八"),
		},
	},
	{
		Name:          "銀冠穴熊",
		Category:      "居飛車",
		Description:   "穴熊から銀冠に発展させた形。",
		MinConfidence: 0.75,
		Conditions: []RawCondition{
			on("玉", 0.3, "9九"),
			on("金", 0.2, "8八"),
			on("金", 0.2, "7八"),
			exact("銀", 0.2, "8七"),
			on("桂", 0.15, "8九"),
			exact("香", 0.15, "9八"),
		},
	},
	{
		Name:          "ビッグ4",
		Category:      "居飛車・振り飛車",
		Description:   "穴熊の究極進化形。金銀4枚で守る。",
		MinConfidence: 0.75,
		Conditions: []RawCondition{
			on("玉", 0.25, "9九"),
			on("金", 0.15, "7八"),
			on("金", 0.15, "8八"),
			on("銀", 0.15, "7七"),
			on("銀", 0.15, "8七"),
			on("桂", 0.1, "8九"),
			on("香", 0.05, "9八"),
		},
	},
	{
		Name:          "箱入り娘",
		Category:      "居飛車",
		Description:   "舟囲いの発展形。玉を金銀で囲む。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.35, "7八"),
			on("金", 0.25, "6九"),
			on("金", 0.25, "6八"),
			exact("銀", 0.15, "7九"),
		},
	},
	{
		Name:          "ミレニアム囲い",
		Category:      "居飛車",
		Description:   "対振り飛車で用いられる独特の囲い。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			exact("玉", 0.4, "8九"),
			exact("金", 0.35, "7九"),
			exact("銀", 0.25, "8八"),
		},
	},
	{
		Name:          "振り飛車穴熊",
		Category:      "振り飛車",
		Description:   "振り飛車の穴熊。非常に堅固。",
		MinConfidence: 0.75,
		Conditions: []RawCondition{
			on("玉", 0.3, "1九"),
			on("金", 0.25, "3九"),
			on("銀", 0.2, "2八"),
			on("桂", 0.15, "2九"),
			exact("香", 0.1, "1八"),
		},
	},
	{
		Name:          "右矢倉",
		Category:      "振り飛車",
		Description:   "矢倉を左右反転させた形。相振り飛車で用いられる。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			on("玉", 0.4, "2八"),
			exact("金", 0.35, "3八"),
			exact("銀", 0.25, "3七"),
		},
	},
	{
		Name:          "金無双",
		Category:      "振り飛車",
		Description:   "相振り飛車の代表的な囲い。金が2枚横に並ぶ。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			exact("玉", 0.4, "3八"),
			exact("金", 0.3, "4八"),
			on("金", 0.3, "5八"),
		},
	},
	{
		Name:          "中住まい",
		Category:      "居飛車・振り飛車",
		Description:   "玉を中央付近に配置する囲い。",
		MinConfidence: 0.6,
		Conditions: []RawCondition{
			exact("玉", 0.3, "5八"),
			exact("金", 0.25, "7八"),
			exact("金", 0.25, "3八"),
			on("銀", 0.2, "4八"),
		},
	},
	{
		Name:          "中原囲い",
		Category:      "居飛車",
		Description:   "中原誠十六世名人が愛用した囲い。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			exact("玉", 0.25, "6九"),
			exact("金", 0.2, "7八"),
			exact("金", 0.2, "5九"),
			on("銀", 0.2, "8八"),
			on("銀", 0.15, "4八"),
		},
	},
	{
		Name:          "アヒル囲い",
		Category:      "居飛車・振り飛車",
		Description:   "アヒルのような形の特殊な囲い。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			exact("玉", 0.25, "5八"),
			exact("金", 0.2, "7九"),
			exact("金", 0.2, "3九"),
			on("銀", 0.2, "6八"),
			on("銀", 0.15, "4八"),
		},
	},
	{
		Name:          "いちご囲い",
		Category:      "居飛車",
		Description:   "1(5)・1(6)・5(銀)で「いちご」。",
		MinConfidence: 0.7,
		Conditions: []RawCondition{
			exact("玉", 0.3, "6八"),
			exact("金", 0.25, "7八"),
			exact("金", 0.25, "5八"),
			on("銀", 0.2, "7九"),
		},
	},
}
