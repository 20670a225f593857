package grammar

// Fixed slot vocabularies. Each slot generator draws one literal uniformly at
// random; the variety is a content requirement, not a correctness one.

var verbs = []string{
	"变美", "改变", "提升", "解决", "搞定", "治愈", "修复", "改善", "告别", "拯救",
}

var adjectives = []string{
	"超级", "绝对", "真的", "超乎想象的", "意想不到的", "神奇的", "惊艳的",
	"令人惊喜的", "不可思议的", "治愈系",
}

var results = []string{
	"效果惊人", "太赞了", "真的绝了", "回购无数次", "用了就离不开",
	"真的太好用了", "强烈推荐", "必入清单", "人手必备", "太值了",
}

var timeFrames = []string{
	"这个月", "最近半年", "过去一年", "三个月来", "这段时间", "一周内",
	"半个月来", "这个季节", "换季期间", "最近",
}

var prefixes = []string{
	"超实用", "必入", "平价", "高效", "一秒", "懒人", "新手", "专业", "隐藏", "小众",
}

var suffixes = []string{
	"效果惊人", "人人都能学会", "新手也能上手", "省时又省力", "真的太赞了",
	"学会就能用一辈子", "一看就会", "太实用了", "绝对值得一试", "回购无数次",
}

var questions = []string{
	"为什么", "如何", "怎样", "谁说", "你知道吗", "想不想", "还在为",
	"是不是", "有没有", "需不需要",
}

var answers = []string{
	"试试这个就知道了", "看完你就明白了", "学会这几招就够了", "答案在这里",
	"方法都在这了", "一篇文章告诉你", "太简单了", "其实很简单",
	"这篇笔记告诉你", "看完秒懂",
}

var experiences = []string{
	"研究", "使用", "体验", "测评", "关注", "痴迷", "热爱", "专注", "沉迷", "钻研",
}

var problems = []string{
	"困扰", "烦恼", "问题", "痛点", "难题", "挑战", "麻烦", "纠结", "不适", "不满",
}

var solutions = []string{
	"完美解决", "彻底改善", "显著提升", "明显改变", "有效缓解", "成功克服",
	"轻松搞定", "完全告别", "全面提高", "根本改变",
}

var ingredients = []string{
	"维生素C", "玻尿酸", "烟酰胺", "水杨酸", "视黄醇", "神经酰胺", "果酸",
	"氨基酸", "胶原蛋白", "积雪草",
}

var frequencies = []string{
	"每天早晚各一次", "每周2-3次", "每天使用一次", "隔天使用一次", "每周使用一次",
	"每天使用2-3次", "根据肌肤状态灵活使用", "连续使用一周后间隔使用",
	"早上使用", "晚上使用",
}

var preparations = []string{
	"清洁面部", "用温水洗脸", "做好基础保湿", "使用爽肤水", "轻拍面部提升吸收力",
	"按摩促进血液循环", "使用导入仪", "敷一片面膜", "用化妆棉湿敷", "做好防晒",
}

var attentions = []string{
	"使用顺序", "产品相克性", "适量使用", "按摩手法", "使用时机", "保存方法",
	"产品新鲜度", "肌肤反应", "季节变化调整", "个人体质差异",
}

var problemDetails = []string{
	"使用后刺痛", "出现红疹", "效果不明显", "使用感不佳", "起泡沫", "搓泥",
	"过敏反应", "干燥紧绷", "油腻感", "不吸收",
}

var solutionDetails = []string{
	"减少使用频率", "与其他产品间隔使用", "更换使用方法", "调整使用量",
	"添加辅助产品", "更换使用时间", "结合其他技巧", "咨询专业人士",
	"查看成分是否相克", "测试是否过敏",
}

// Author names are assembled from three independent pools.
var authorPrefixes = []string{"小", "大", "甜", "酷", "美", "潮", "萌", "闪", "亮", "俏"}
var authorMiddles = []string{"白", "黑", "红", "绿", "蓝", "紫", "橙", "粉", "灰", "棕"}
var authorSuffixes = []string{"兔", "猫", "狗", "鱼", "鸟", "熊", "鹿", "象", "狐", "豹"}

var commentPool = []string{
	"太实用了，收藏了！",
	"这个真的好用，我已经入手了",
	"感谢分享，正好需要这个",
	"请问在哪里可以买到呢？",
	"效果真的像你说的那么好吗？",
	"我用了一周了，效果确实不错",
	"包装看起来很精致，想入手",
	"价格是多少呀？",
	"这个适合敏感肌吗？",
	"我之前用过类似的，但没这么好用",
}

// Tag pools. The base tags are always present; the rest are drawn without
// replacement by the tag builders.
var additionalTags = []string{
	"小红书", "种草", "好物", "推荐", "实用", "干货", "必入", "宝藏", "神器",
}

var emotionalTags = []string{
	"治愈", "舒适", "惊艳", "实用", "高效", "省心", "省钱", "高颜值", "好用",
}

var demographicTags = []string{
	"学生党", "上班族", "宝妈", "干皮", "油皮", "敏感肌", "新手", "达人", "博主",
}

var successFactors = []string{
	"真实的个人体验分享",
	"清晰的前后效果对比",
	"详细的使用步骤和感受",
	"解决特定痛点的实用建议",
}
