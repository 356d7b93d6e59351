package names

import "golang.org/x/text/language"

type table struct {
	sep        string
	stems      [10]string
	branches   [12]string
	zodiacs    [12]string
	elements   [5]string // Metal, Wood, Water, Fire, Earth
	polarities [2]string // Yin, Yang
}

// supported is in the same order as tables. The first entry is the
// matcher's fallback.
var supported = []language.Tag{
	language.Vietnamese,
	language.Chinese,
	language.English,
}

var matcher = language.NewMatcher(supported)

var tables = []*table{
	{
		sep:        " ",
		stems:      [10]string{"Giáp", "Ất", "Bính", "Đinh", "Mậu", "Kỷ", "Canh", "Tân", "Nhâm", "Quý"},
		branches:   [12]string{"Tý", "Sửu", "Dần", "Mão", "Thìn", "Tỵ", "Ngọ", "Mùi", "Thân", "Dậu", "Tuất", "Hợi"},
		zodiacs:    [12]string{"Chuột", "Trâu", "Hổ", "Mèo", "Rồng", "Rắn", "Ngựa", "Dê", "Khỉ", "Gà", "Chó", "Lợn"},
		elements:   [5]string{"Kim", "Mộc", "Thủy", "Hỏa", "Thổ"},
		polarities: [2]string{"Âm", "Dương"},
	},
	{
		sep:        "",
		stems:      [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"},
		branches:   [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"},
		zodiacs:    [12]string{"鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊", "猴", "鸡", "狗", "猪"},
		elements:   [5]string{"金", "木", "水", "火", "土"},
		polarities: [2]string{"阴", "阳"},
	},
	{
		// Romanized (pinyin) stems and branches.
		sep:        " ",
		stems:      [10]string{"Jia", "Yi", "Bing", "Ding", "Wu", "Ji", "Geng", "Xin", "Ren", "Gui"},
		branches:   [12]string{"Zi", "Chou", "Yin", "Mao", "Chen", "Si", "Wu", "Wei", "Shen", "You", "Xu", "Hai"},
		zodiacs:    [12]string{"Rat", "Buffalo", "Tiger", "Cat", "Dragon", "Snake", "Horse", "Goat", "Monkey", "Chicken", "Dog", "Pig"},
		elements:   [5]string{"Metal", "Wood", "Water", "Fire", "Earth"},
		polarities: [2]string{"Yin", "Yang"},
	},
}
