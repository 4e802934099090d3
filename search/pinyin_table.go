package search

// DefaultPinyinTable returns the built-in romanization table. Two-rune
// entries take precedence during transliteration. Coverage follows the
// vocabulary that actually occurs in game titles and trainer listings;
// it is not a general-purpose dictionary.
func DefaultPinyinTable() map[string]string {
	return map[string]string{
		"张": "zhang", "王": "wang", "李": "li", "赵": "zhao", "刘": "liu", "陈": "chen",
		"杨": "yang", "黄": "huang", "周": "zhou", "吴": "wu", "徐": "xu", "孙": "sun",
		"一": "yi", "二": "er", "三": "san", "四": "si", "五": "wu", "六": "liu",
		"七": "qi", "八": "ba", "九": "jiu", "十": "shi", "百": "bai", "千": "qian",
		"万": "wan", "亿": "yi", "游": "you", "戏": "xi", "模": "mo", "改": "gai",
		"版": "ban", "本": "ben", "大": "da", "小": "xiao", "中": "zhong", "上": "shang",
		"下": "xia", "左": "zuo", "右": "you", "金": "jin", "钱": "qian", "币": "bi",
		"无": "wu", "限": "xian", "全": "quan", "部": "bu", "功": "gong", "能": "neng",
		"最": "zui", "新": "xin", "免": "mian", "费": "fei", "单": "dan", "机": "ji",
		"在": "zai", "线": "xian", "网": "wang", "络": "luo", "多": "duo", "人": "ren",
		"角": "jiao", "色": "se", "任": "ren", "务": "wu", "通": "tong", "关": "guan",
		"难": "nan", "度": "du", "简": "jian", "困": "kun", "挑": "tiao", "战": "zhan",
		"式": "shi", "地": "di", "图": "tu", "装": "zhuang", "备": "bei", "武": "wu",
		"器": "qi", "技": "ji", "属": "shu", "性": "xing", "经": "jing", "验": "yan",
		"等": "deng", "级": "ji", "升": "sheng", "资": "zi", "源": "yuan", "保": "bao",
		"存": "cun", "读": "du", "取": "qu", "档": "dang", "开": "kai", "始": "shi",
		"结": "jie", "束": "shu", "暂": "zan", "停": "ting", "继": "ji", "续": "xu",
		"退": "tui", "出": "chu", "设": "she", "置": "zhi", "选": "xuan", "项": "xiang",
		"帮": "bang", "助": "zhu", "于": "yu", "信": "xin", "息": "xi", "说": "shuo",
		"明": "ming", "指": "zhi", "南": "nan", "攻": "gong", "略": "lve", "秘": "mi",
		"籍": "ji", "窍": "qiao", "门": "men", "巧": "qiao", "玩": "wan", "法": "fa",
		"体": "ti", "乐": "le", "趣": "qu", "娱": "yu", "刺": "ci", "激": "ji",
		"兴": "xing", "奋": "fen", "紧": "jin", "惊": "jing", "险": "xian", "爽": "shuang",
		"快": "kuai", "舒": "shu", "适": "shi", "流": "liu", "畅": "chang", "稳": "wen",
		"定": "ding", "画": "hua", "面": "mian", "声": "sheng", "音": "yin", "操": "cao",
		"作": "zuo", "控": "kong", "制": "zhi", "洁": "jie", "方": "fang", "便": "bian",
		"实": "shi", "用": "yong", "有": "you", "精": "jing", "彩": "cai", "独": "du",
		"特": "te", "创": "chuang", "典": "dian", "传": "chuan", "奇": "qi", "神": "shen",
		"壮": "zhuang", "观": "guan", "美": "mei", "丽": "li", "可": "ke", "爱": "ai",
		"酷": "ku", "炫": "xuan", "时": "shi", "尚": "shang", "现": "xian", "代": "dai",
		"未": "wei", "来": "lai", "科": "ke", "恐": "kong", "怖": "bu", "悚": "song",
		"浪": "lang", "漫": "man", "喜": "xi", "欢": "huan", "好": "hao", "迷": "mi",
		"恋": "lian", "热": "re", "情": "qing", "家": "jia", "粉": "fen", "丝": "si",
		"追": "zhui", "随": "sui", "支": "zhi", "持": "chi", "祝": "zhu", "愿": "yuan",
		"希": "xi", "望": "wang", "梦": "meng", "想": "xiang", "目": "mu", "标": "biao",
		"计": "ji", "划": "hua", "努": "nu", "力": "li", "坚": "jian", "成": "cheng",
		"失": "shi", "败": "bai", "胜": "sheng", "利": "li", "会": "hui", "幸": "xing",
		"运": "yun", "贺": "he", "感": "gan", "谢": "xie", "理": "li", "解": "jie",
		"宽": "kuan", "容": "rong", "友": "you", "和": "he", "平": "ping", "团": "tuan",
		"合": "he", "心": "xin", "照": "zhao", "顾": "gu", "护": "hu", "尊": "zun",
		"重": "zhong", "诚": "cheng", "真": "zhen", "正": "zheng", "直": "zhi", "勇": "yong",
		"敢": "gan", "强": "qiang", "智": "zhi", "慧": "hui", "聪": "cong", "干": "gan",
		"勤": "qin", "劳": "lao", "刻": "ke", "苦": "ku", "认": "ren", "负": "fu",
		"责": "ze", "亲": "qin", "福": "fu", "健": "jian", "康": "kang", "安": "an",
		"顺": "shun", "吉": "ji", "祥": "xiang", "如": "ru", "意": "yi", "满": "man",
		"圆": "yuan", "完": "wan", "者": "zhe", "荣": "rong", "耀": "yao", "赛": "sai",
		"博": "bo", "朋": "peng", "克": "ke", "生": "sheng", "化": "hua", "危": "wei",
		"村": "cun", "庄": "zhuang", "黑": "hei", "暗": "an", "之": "zhi", "魂": "hun",
		"艾": "ai", "尔": "er", "登": "deng", "环": "huan", "原": "yuan", "荒": "huang",
		"野": "ye", "镖": "biao", "客": "ke", "使": "shi", "命": "ming", "召": "zhao",
		"唤": "huan", "争": "zheng", "霸": "ba", "猎": "lie", "怪": "guai", "物": "wu",
		"只": "zhi", "狼": "lang", "影": "ying", "泰": "tai", "古": "gu", "墓": "mu",
		"条": "tiao", "孤": "gu", "岛": "dao", "末": "mo", "日": "ri", "求": "qiu",
		"星": "xing", "空": "kong", "际": "ji", "公": "gong", "路": "lu", "死": "si",
		"亡": "wang", "底": "di", "工": "gong", "风": "feng", "灵": "ling", "月": "yue",
		"骑": "qi", "士": "shi", "龙": "long", "腾": "teng", "世": "shi", "界": "jie",
		"文": "wen", "仙": "xian", "剑": "jian", "侠": "xia", "缘": "yuan", "轨": "gui",
		"迹": "ji", "寂": "ji", "静": "jing", "岭": "ling", "逃": "tao", "拯": "zheng",
		"救": "jiu", "光": "guang", "域": "yu", "塔": "ta", "防": "fang", "御": "yu",
		"足": "zu", "球": "qiu", "篮": "lan", "竞": "jing", "速": "su", "拟": "ni",
		"城": "cheng", "市": "shi", "农": "nong", "场": "chang", "牧": "mu", "建": "jian",
		"造": "zao", "沙": "sha", "盒": "he", "像": "xiang", "素": "su", "枪": "qiang",
		"狙": "ju", "击": "ji", "铁": "tie", "血": "xue", "兵": "bing",

		"游戏": "youxi", "修改": "xiugai", "版本": "banben", "无限": "wuxian",
		"全部": "quanbu", "功能": "gongneng", "最新": "zuixin", "免费": "mianfei",
		"单机": "danji", "在线": "zaixian", "网络": "wangluo", "多人": "duoren",
		"角色": "juese", "任务": "renwu", "通关": "tongguan", "难度": "nandu",
		"简单": "jiandan", "困难": "kunnan", "挑战": "tiaozhan", "模式": "moshi",
		"地图": "ditu", "装备": "zhuangbei", "武器": "wuqi", "技能": "jineng",
		"属性": "shuxing", "经验": "jingyan", "等级": "dengji", "升级": "shengji",
		"资源": "ziyuan", "保存": "baocun", "读取": "duqu", "存档": "cundang",
		"读档": "dudang", "开始": "kaishi", "结束": "jieshu", "暂停": "zanting",
		"继续": "jixu", "退出": "tuichu", "设置": "shezhi", "选项": "xuanxiang",
		"帮助": "bangzhu", "关于": "guanyu", "信息": "xinxi", "说明": "shuoming",
		"指南": "zhinan", "攻略": "gonglve", "秘籍": "miji", "窍门": "qiaomen",
		"技巧": "jiqiao", "玩法": "wanfa", "体验": "tiyan", "乐趣": "lequ",
		"娱乐": "yule", "刺激": "ciji", "兴奋": "xingfen", "紧张": "jinzhang",
		"惊险": "jingxian", "爽快": "shuangkuai", "舒适": "shushi", "流畅": "liuchang",
		"稳定": "wending", "画面": "huamian", "声音": "shengyin", "音乐": "yinle",
		"操作": "caozuo", "控制": "kongzhi", "简洁": "jianjie", "方便": "fangbian",
		"实用": "shiyong", "有趣": "youqu", "精彩": "jingcai", "独特": "dute",
		"创新": "chuangxin", "经典": "jingdian", "传奇": "chuanqi", "神奇": "shenqi",
		"壮观": "zhuangguan", "美丽": "meili", "可爱": "keai", "酷炫": "kuxuan",
		"时尚": "shishang", "现代": "xiandai", "未来": "weilai", "科技": "keji",
		"神秘": "shenmi", "恐怖": "kongbu", "惊悚": "jingsong", "浪漫": "langman",
		"喜欢": "xihuan", "爱好": "aihao", "迷恋": "milian", "热爱": "reai",
		"玩家": "wanjia", "粉丝": "fensi", "追随": "zhuisui", "支持": "zhichi",
		"祝愿": "zhuyuan", "希望": "xiwang", "梦想": "mengxiang", "目标": "mubiao",
		"计划": "jihua", "努力": "nuli", "坚持": "jianchi", "成功": "chenggong",
		"失败": "shibai", "胜利": "shengli", "机会": "jihui", "幸运": "xingyun",
		"祝贺": "zhuhe", "感谢": "ganxie", "理解": "lijie", "宽容": "kuanrong",
		"友好": "youhao", "和平": "heping", "团结": "tuanjie", "合作": "hezuo",
		"关心": "guanxin", "照顾": "zhaogu", "爱护": "aihu", "尊重": "zunzhong",
		"信任": "xinren", "诚实": "chengshi", "真诚": "zhencheng", "正直": "zhengzhi",
		"勇敢": "yonggan", "坚强": "jianqiang", "智慧": "zhihui", "聪明": "congming",
		"能干": "nenggan", "勤劳": "qinlao", "刻苦": "kuku", "认真": "renzhen",
		"负责": "fuze", "热情": "reqing", "友情": "youqing", "爱情": "aiqing",
		"亲情": "qinqing", "快乐": "kuaile", "幸福": "xingfu", "健康": "jiankang",
		"安全": "anquan", "平安": "pingan", "顺利": "shunli", "吉祥": "jixiang",
		"如意": "ruyi", "美满": "meiman", "圆满": "yuanman", "完美": "wanmei",
	}
}
