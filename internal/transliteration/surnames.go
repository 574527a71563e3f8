package transliteration

// surnames holds the conventional passport spelling of common Korean family
// names. The algorithmic romanization of these differs from what people
// actually write (김 -> gim vs Kim), so the table wins whenever it has an entry.
var surnames = map[string]string{
	"김": "Kim", "이": "Lee", "박": "Park", "최": "Choi", "정": "Jung",
	"강": "Kang", "조": "Cho", "윤": "Yoon", "장": "Jang", "임": "Lim",
	"한": "Han", "오": "Oh", "서": "Seo", "신": "Shin", "권": "Kwon",
	"황": "Hwang", "안": "Ahn", "송": "Song", "류": "Ryu", "유": "Yoo",
	"전": "Jeon", "홍": "Hong", "고": "Ko", "문": "Moon", "양": "Yang",
	"손": "Son", "배": "Bae", "백": "Baek", "허": "Heo", "남": "Nam",
	"심": "Shim", "노": "Noh", "하": "Ha", "곽": "Kwak", "성": "Sung",
	"차": "Cha", "주": "Joo", "우": "Woo", "구": "Koo", "민": "Min",
	"진": "Jin", "나": "Na", "지": "Ji", "엄": "Eom", "채": "Chae",
	"원": "Won", "천": "Cheon", "방": "Bang", "공": "Kong", "현": "Hyun",
	"함": "Ham", "변": "Byun", "염": "Yeom", "여": "Yeo", "추": "Choo",
	"도": "Do", "소": "So", "석": "Seok", "선": "Sun", "설": "Seol",
	"마": "Ma", "길": "Gil", "연": "Yeon", "위": "Wi", "표": "Pyo",
	"명": "Myung", "기": "Ki", "반": "Ban", "왕": "Wang", "금": "Keum",
	"옥": "Ok", "육": "Yook", "인": "In", "맹": "Maeng", "제": "Je",
	"모": "Mo", "탁": "Tak", "국": "Kook", "어": "Eo", "은": "Eun",
	"편": "Pyun", "용": "Yong", "예": "Ye", "경": "Kyung", "봉": "Bong",
	"사": "Sa", "부": "Boo", "가": "Ka", "복": "Bok", "태": "Tae",
	"목": "Mok", "형": "Hyung", "피": "Pi", "두": "Doo", "감": "Kam",
	"라": "Ra", "빈": "Bin", "동": "Dong", "호": "Ho", "범": "Bum",
	"승": "Seung", "상": "Sang", "시": "Si", "갈": "Gal", "팽": "Paeng",
	"남궁": "Namgung", "황보": "Hwangbo", "제갈": "Jegal", "선우": "Sunwoo",
	"독고": "Dokgo", "사공": "Sagong", "서문": "Seomun", "동방": "Dongbang",
}

// compoundSurnames are two-syllable family names checked before falling back
// to the first syllable.
var compoundSurnames = []string{"남궁", "황보", "제갈", "선우", "독고", "사공", "서문", "동방"}
