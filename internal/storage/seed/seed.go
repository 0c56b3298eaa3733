package seed

import "github.com/WuFaChieh/Mostra-exhibition/internal/domain"

// Exhibitions returns a fresh copy of the built-in catalogue. Records with comments
// have their rating recomputed from those comments.
func Exhibitions() []domain.Exhibition {
	out := make([]domain.Exhibition, 0, len(catalogue))
	for _, e := range catalogue {
		e = e.Clone()
		// A record without comments keeps its catalogue rating as a baseline; the
		// first AddComment replaces it with the comment mean.
		if len(e.Comments) > 0 {
			e.Rating = domain.MeanRating(e.Comments)
		}
		out = append(out, e)
	}
	return out
}

// Notifications are the messages every new session starts with.
func Notifications() []domain.Notification {
	return []domain.Notification{
		{ID: "1", Title: "歡迎來到 Mostra", Message: "這裡匯集了台灣最棒的展覽資訊。", Timestamp: "剛剛", Type: domain.NotificationSuccess},
		{ID: "2", Title: "追蹤名單更新", Message: "您關注的「奇美博物館」發布了新消息。", Timestamp: "1小時前", Type: domain.NotificationInfo},
	}
}

var catalogue = []domain.Exhibition{
	{
		ID:             "e1",
		Title:          "從拉斐爾到梵谷：英國國家藝廊珍藏展",
		Artist:         "奇美博物館 Chimei Museum",
		DateRange:      "2024/05/02 - 2024/09/01",
		Description:    "台灣史上最高規格西洋畫展！由奇美博物館與英國國家藝廊共同主辦，匯集波提切利、拉斐爾、提香、卡拉瓦喬、林布蘭、哥雅、透納、塞尚、莫內、雷諾瓦、高更、梵谷等50位大師真跡。",
		Location:       "台南市 · 奇美博物館",
		Category:       "博物館",
		ImageURL:       "https://images.unsplash.com/photo-1574169208507-84376144848b?q=80&w=800&auto=format&fit=crop",
		Kind:           domain.KindMajor,
		PriceMode:      domain.PricePaid,
		Tags:           []string{"西洋繪畫", "大師真跡", "必看大展"},
		Rating:         4.9,
		SourceURL:      "https://www.chimeimuseum.org/",
		BookmarksCount: 1240,
		Comments: []domain.Comment{
			{ID: "c1", UserID: "u2", UserName: "ArtLover_TW", UserAvatar: "https://picsum.photos/id/65/100/100", Rating: 5, Text: "動線規劃得很好，雖然人多但不至於擁擠。看到梵谷向日葵真跡的時候眼淚都要掉下來了！", Date: "2天前"},
		},
	},
	{
		ID:             "e2",
		Title:          "瞬間－穿越繪畫與攝影之旅",
		Artist:         "高雄市立美術館",
		DateRange:      "2024/06/29 - 2024/11/17",
		Description:    "與英國泰特美術館（Tate）合作，展出畢卡索、安迪沃荷、大衛霍克尼等大師作品。探討繪畫與攝影之間長達百年的互動關係，捕捉藝術史上的關鍵「瞬間」。",
		Location:       "高雄市 · 高美館",
		Category:       "美術館",
		ImageURL:       "https://images.unsplash.com/photo-1541963463532-d68292c34b19?q=80&w=800&auto=format&fit=crop",
		Kind:           domain.KindMajor,
		PriceMode:      domain.PricePaid,
		Tags:           []string{"當代藝術", "攝影", "泰特美術館"},
		Rating:         4.8,
		SourceURL:      "https://www.kmfa.gov.tw/",
		BookmarksCount: 856,
	},
	{
		ID:             "e3",
		Title:          "達文西體驗展－超越500年的輝煌",
		Artist:         "華山1914文創園區",
		DateRange:      "2024/06/14 - 2024/09/29",
		Description:    "透過沉浸式光影互動與實體模型，解密文藝復興全能天才達文西的筆記與發明。展覽結合科技與藝術，帶領觀眾走進達文西的異想世界。",
		Location:       "台北市 · 華山文創園區",
		Category:       "親子互動",
		ImageURL:       "https://images.unsplash.com/photo-1597926665727-4a123f6d7874?q=80&w=800&auto=format&fit=crop",
		Kind:           domain.KindMajor,
		PriceMode:      domain.PricePaid,
		Tags:           []string{"沈浸式體驗", "親子共遊", "文藝復興"},
		Rating:         4.5,
		SourceURL:      "https://www.huashan1914.com/",
		BookmarksCount: 632,
	},
	{
		ID:             "e4",
		Title:          "臺北美術獎 2024",
		Artist:         "臺北市立美術館",
		DateRange:      "2024/05/10 - 2024/08/10",
		Description:    "台灣當代藝術的重要指標。展出入選藝術家的創新作品，形式涵蓋平面繪畫、立體裝置、錄像藝術等，展現台灣新生代藝術家的充沛能量。",
		Location:       "台北市 · 北美館",
		Category:       "美術館",
		ImageURL:       "https://images.unsplash.com/photo-1563089145-599997674d42?q=80&w=800&auto=format&fit=crop",
		Kind:           domain.KindMajor,
		PriceMode:      domain.PriceFree,
		Tags:           []string{"台灣當代", "新銳藝術家", "免費參觀"},
		Rating:         4.2,
		SourceURL:      "https://www.tfam.museum/",
		BookmarksCount: 315,
	},
	{
		ID:             "e5",
		Title:          "真實本質：羅丹與印象派時代",
		Artist:         "富邦美術館",
		DateRange:      "2024/05/04 - 2024/09/23",
		Description:    "富邦美術館開館大展，與洛杉磯郡立美術館（LACMA）合作，引進羅丹、雷諾瓦、塞尚、莫內等19世紀大師的雕塑與畫作，是近年難得的重磅展覽。",
		Location:       "台北市 · 富邦美術館",
		Category:       "美術館",
		ImageURL:       "https://images.unsplash.com/photo-1555581561-c30d92257217?q=80&w=800&auto=format&fit=crop",
		Kind:           domain.KindMajor,
		PriceMode:      domain.PricePaid,
		Tags:           []string{"雕塑", "印象派", "國際大展"},
		Rating:         4.7,
		SourceURL:      "https://www.fubonart.org.tw/",
		BookmarksCount: 920,
	},
	{
		ID:             "e6",
		Title:          "看得見的秘密：視覺機能的發現之旅",
		Artist:         "國立自然科學博物館",
		DateRange:      "2024/04/15 - 2024/11/10",
		Description:    "從生物演化的角度探索「視覺」的奧秘。為什麼有些動物看得到紅外線？人類的眼睛又是如何運作的？適合全家大小一起探索的科學展覽。",
		Location:       "台中市 · 科博館",
		Category:       "親子互動",
		ImageURL:       "https://images.unsplash.com/photo-1535581652167-3d6b98c538a5?q=80&w=800&auto=format&fit=crop",
		Kind:           domain.KindMajor,
		PriceMode:      domain.PricePaid,
		Tags:           []string{"科普", "生物學", "親子教育"},
		Rating:         4.6,
		SourceURL:      "https://www.nmns.edu.tw/",
		BookmarksCount: 450,
	},
	{
		ID:             "e7",
		Title:          "大美不言",
		Artist:         "國立故宮博物院",
		DateRange:      "2024/09/26 - 2024/12/29",
		Description:    "故宮與巴黎裝飾藝術博物館及梵克雅寶（Van Cleef & Arpels）合作，展出精緻的珠寶、陶瓷與玉器，呈現東西方工藝美學的極致對話。",
		Location:       "台北市 · 故宮博物院",
		Category:       "博物館",
		ImageURL:       "https://images.unsplash.com/photo-1601646272535-6541f5358052?q=80&w=800&auto=format&fit=crop",
		Kind:           domain.KindMajor,
		PriceMode:      domain.PricePaid,
		Tags:           []string{"珠寶工藝", "故宮", "跨界合作"},
		Rating:         4.8,
		SourceURL:      "https://www.npm.gov.tw/",
		BookmarksCount: 780,
	},
	{
		ID:             "e8",
		Title:          "名偵探柯南 連載30週年紀念展",
		Artist:         "新光三越 台北信義新天地",
		DateRange:      "2024/07/06 - 2024/09/01",
		Description:    "真相永遠只有一個！柯南連載30週年，展出珍貴手稿、經典案件回顧以及作者青山剛昌的訪談，是動漫迷不可錯過的盛會。",
		Location:       "台北市 · 信義新天地A11",
		Category:       "文創園區",
		ImageURL:       "https://images.unsplash.com/photo-1612404730960-5c71579fca2c?q=80&w=800&auto=format&fit=crop",
		Kind:           domain.KindMajor,
		PriceMode:      domain.PricePaid,
		Tags:           []string{"動漫", "日本IP", "打卡熱點"},
		Rating:         4.4,
		SourceURL:      "https://www.skm.com.tw/",
		BookmarksCount: 1500,
	},
	{
		ID:             "e9",
		Title:          "Hello, Human! 人類，你好！",
		Artist:         "台北當代藝術館 MOCA",
		DateRange:      "2024/01/27 - 2024/05/12",
		Description:    "在AI快速發展的時代，我們如何定義「人類」？MOCA 集結多位國內外藝術家，透過數位藝術與裝置，反思科技與人性的邊界。",
		Location:       "台北市 · MOCA",
		Category:       "美術館",
		ImageURL:       "https://images.unsplash.com/photo-1550684848-fac1c5b4e853?q=80&w=800&auto=format&fit=crop",
		Kind:           domain.KindMajor,
		PriceMode:      domain.PricePaid,
		Tags:           []string{"AI藝術", "科技倫理", "當代思辨"},
		Rating:         4.3,
		SourceURL:      "https://www.mocataipei.org.tw/",
		BookmarksCount: 340,
	},
	{
		ID:             "e10",
		Title:          "台南400：透．南城",
		Artist:         "台南市美術館 1館",
		DateRange:      "2024/06/21 - 2024/09/01",
		Description:    "慶祝台南建城400年，透過藝術家的視角，重新詮釋這座古都的巷弄、建築與生活氣味。展場結合視覺與嗅覺體驗，帶你穿梭時空。",
		Location:       "台南市 · 南美館",
		Category:       "美術館",
		ImageURL:       "https://images.unsplash.com/photo-1570701257322-e42bc5605d7b?q=80&w=800&auto=format&fit=crop",
		Kind:           domain.KindMajor,
		PriceMode:      domain.PricePaid,
		Tags:           []string{"台南400", "在地文化", "城市記憶"},
		Rating:         4.6,
		SourceURL:      "https://www.tnam.museum/",
		BookmarksCount: 560,
	},
	{
		ID:             "e11",
		Title:          "teamLab共創！未來園",
		Artist:         "國立臺灣科學教育館",
		DateRange:      "2024/06/14 - 2024/10/13",
		Description:    "全球最紅的數位藝術團隊 teamLab 再次來台！這次帶來「共創」主題，讓觀眾的塗鴉變成展覽的一部分，是今夏最夢幻的打卡點。",
		Location:       "台北市 · 科教館",
		Category:       "親子互動",
		ImageURL:       "https://images.unsplash.com/photo-1550136513-548af4445338?q=80&w=800&auto=format&fit=crop",
		Kind:           domain.KindMajor,
		PriceMode:      domain.PricePaid,
		Tags:           []string{"數位藝術", "teamLab", "親子"},
		Rating:         4.9,
		SourceURL:      "https://www.ntsec.gov.tw/",
		BookmarksCount: 2100,
	},
	{
		ID:             "e12",
		Title:          "極度日常：屏東展",
		Artist:         "屏東美術館",
		DateRange:      "2024/04/20 - 2024/08/30",
		Description:    "兩位日本木雕大師橋本美緒與花房櫻首次在台合體展出。以貓咪、柴犬為主題的超寫實木雕，溫暖療癒，捕捉生活中最平凡卻珍貴的片刻。",
		Location:       "屏東市 · 屏東美術館",
		Category:       "美術館",
		ImageURL:       "https://images.unsplash.com/photo-1511553677255-b93b269a815b?q=80&w=800&auto=format&fit=crop",
		Kind:           domain.KindMajor,
		PriceMode:      domain.PricePaid,
		Tags:           []string{"木雕", "療癒系", "動物"},
		Rating:         4.8,
		SourceURL:      "https://www.ptcg.gov.tw/",
		BookmarksCount: 670,
	},
	{
		ID:             "e13",
		Title:          "宜蘭國際童玩藝術節",
		Artist:         "冬山河親水公園",
		DateRange:      "2024/07/06 - 2024/08/18",
		Description:    "夏天就是要去宜蘭！結合水上遊戲、國際民俗舞蹈表演與展覽，是台灣最具代表性的夏季慶典之一。",
		Location:       "宜蘭縣 · 冬山河",
		Category:       "文創園區",
		ImageURL:       "https://images.unsplash.com/photo-1533644265403-176378c2e987?q=80&w=800&auto=format&fit=crop",
		Kind:           domain.KindMajor,
		PriceMode:      domain.PricePaid,
		Tags:           []string{"戶外活動", "親子", "夏日祭典"},
		Rating:         4.5,
		SourceURL:      "https://www.yicfff.tw/",
		BookmarksCount: 1100,
	},
	{
		ID:             "e14",
		Title:          "怪獸與大自然的奇幻世界",
		Artist:         "中正紀念堂",
		DateRange:      "2024/07/04 - 2024/10/13",
		Description:    "大英自然史博物館與哈利波特電影團隊合作，展示真實世界的珍奇動物與電影中的奇獸之間的關聯。魔法迷與生物迷的雙重享受。",
		Location:       "台北市 · 中正紀念堂",
		Category:       "博物館",
		ImageURL:       "https://images.unsplash.com/photo-1633519391081-34440536c04f?q=80&w=800&auto=format&fit=crop",
		Kind:           domain.KindMajor,
		PriceMode:      domain.PricePaid,
		Tags:           []string{"哈利波特", "自然史", "電影展"},
		Rating:         4.7,
		SourceURL:      "https://www.cksmh.gov.tw/",
		BookmarksCount: 1800,
	},
	{
		ID:             "e15",
		Title:          "Formosa 玩具圖書館",
		Artist:         "新北市藝文中心",
		DateRange:      "2024/01/01 - 2024/12/31",
		Description:    "不僅是展覽，更是玩樂空間。收集台灣古早味童玩與現代環保玩具，推廣「以租代買」的永續概念，適合帶小朋友放電。",
		Location:       "新北市 · 板橋",
		Category:       "親子互動",
		ImageURL:       "https://images.unsplash.com/photo-1596461404969-9ae70f2830c1?q=80&w=800&auto=format&fit=crop",
		Kind:           domain.KindMinor,
		PriceMode:      domain.PriceFree,
		Tags:           []string{"玩具", "環保", "免費"},
		Rating:         4.2,
		SourceURL:      "https://www.culture.ntpc.gov.tw/",
		BookmarksCount: 200,
	},
	{
		ID:             "e16",
		Title:          "礦山藝術季：黃金盛典",
		Artist:         "黃金博物館",
		DateRange:      "2024/06/01 - 2024/09/30",
		Description:    "結合金瓜石的地景與歷史，邀請藝術家在礦山中進行創作。漫步在山城中，轉角就能遇見藝術，感受昔日淘金歲月的輝煌與滄桑。",
		Location:       "新北市 · 金瓜石",
		Category:       "歷史人文",
		ImageURL:       "https://images.unsplash.com/photo-1444492417251-9c84a5fa18e0?q=80&w=800&auto=format&fit=crop",
		Kind:           domain.KindMinor,
		PriceMode:      domain.PricePaid,
		Tags:           []string{"地景藝術", "歷史建築", "戶外"},
		Rating:         4.6,
		SourceURL:      "https://www.gep.ntpc.gov.tw/",
		BookmarksCount: 520,
	},
	{
		ID:             "e17",
		Title:          "2024 台灣設計展",
		Artist:         "台南市美術館 2館",
		DateRange:      "2024/10/26 - 2024/11/10",
		Description:    "年度設計盛事移師台南！以「是台南，當是未來」為主題，展現古都如何透過設計力轉型，結合傳統工藝與現代科技。",
		Location:       "台南市 · 全區",
		Category:       "文創園區",
		ImageURL:       "https://images.unsplash.com/photo-1561059488-28451b685822?q=80&w=800&auto=format&fit=crop",
		Kind:           domain.KindMinor,
		PriceMode:      domain.PriceFree,
		Tags:           []string{"設計", "城市美學", "免費"},
		Rating:         4.5,
		SourceURL:      "https://www.designexpo.org.tw/",
		BookmarksCount: 890,
	},
	{
		ID:             "e18",
		Title:          "朱銘美術館：夜間開館",
		Artist:         "朱銘美術館",
		DateRange:      "2024/07/06 - 2024/08/31",
		Description:    "夏季限定的夜間開放！在星空下欣賞太極系列雕塑，配合燈光投射，展現出與白天截然不同的磅礴氣勢。每週六還有煙火施放。",
		Location:       "新北市 · 金山",
		Category:       "美術館",
		ImageURL:       "https://images.unsplash.com/photo-1599592476686-3532f8313494?q=80&w=800&auto=format&fit=crop",
		Kind:           domain.KindMinor,
		PriceMode:      domain.PricePaid,
		Tags:           []string{"夜遊", "雕塑", "戶外美術館"},
		Rating:         4.8,
		SourceURL:      "https://www.juming.org.tw/",
		BookmarksCount: 1300,
	},
	{
		ID:             "e19",
		Title:          "熱帶天堂：印尼當代藝術",
		Artist:         "嘉義市立美術館",
		DateRange:      "2024/05/15 - 2024/08/25",
		Description:    "嘉美館透過這次展覽，開啟台灣與東南亞的藝術對話。色彩鮮豔、充滿生命力的印尼當代藝術，帶給觀眾強烈的視覺衝擊。",
		Location:       "嘉義市 · 嘉美館",
		Category:       "美術館",
		ImageURL:       "https://images.unsplash.com/photo-1547826039-bfc35e0f1ea8?q=80&w=800&auto=format&fit=crop",
		Kind:           domain.KindMinor,
		PriceMode:      domain.PricePaid,
		Tags:           []string{"東南亞", "當代繪畫", "文化交流"},
		Rating:         4.1,
		SourceURL:      "https://chiayiartmuseum.chiayi.gov.tw/",
		BookmarksCount: 220,
	},
	{
		ID:             "e20",
		Title:          "古物揭密：刀劍光影",
		Artist:         "國立臺灣歷史博物館",
		DateRange:      "2024/04/01 - 2024/12/31",
		Description:    "展出館藏的珍貴刀劍兵器，從鄭成功時代到日治時期，每把刀劍背後都刻畫著台灣歷史的動盪與變遷。",
		Location:       "台南市 · 臺史博",
		Category:       "歷史人文",
		ImageURL:       "https://images.unsplash.com/photo-1589828989531-18cb93822188?q=80&w=800&auto=format&fit=crop",
		Kind:           domain.KindMinor,
		PriceMode:      domain.PricePaid,
		Tags:           []string{"冷兵器", "台灣史", "軍事迷"},
		Rating:         4.4,
		SourceURL:      "https://www.nmth.gov.tw/",
		BookmarksCount: 410,
	},
}
