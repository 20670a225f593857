package grammar

import (
	"fmt"
	"strings"
)

// Discovery templates render the mocked trending notes and the analysis
// findings derived from them.

// NoteTitle renders a trending-note title. Titles rotate through seven
// templates by note index so a collected batch does not repeat one shape.
func (g *Generator) NoteTitle(keyword, category string, index int) string {
	templates := []string{
		fmt.Sprintf("%s必入！这%d款%s真的绝了", keyword, g.intn(3, 8), category),
		fmt.Sprintf("谁说%s不能%s？试试这个就知道了！", keyword, g.Verb()),
		fmt.Sprintf("%s%s%s，%s", g.Adjective(), keyword, category, g.Result()),
		fmt.Sprintf("%d个%s%s小技巧，第%d个太惊艳了", g.intn(1, 11), keyword, category, g.intn(3, 8)),
		fmt.Sprintf("%s我只用这款%s%s，效果%s", g.TimeFrame(), keyword, category, g.Adjective()),
		fmt.Sprintf("%s%s%s分享，%s", g.Prefix(), keyword, category, g.Suffix()),
		fmt.Sprintf("%s%s%s？%s", g.Question(), keyword, category, g.Answer()),
	}
	return templates[index%len(templates)]
}

// NoteContent renders a trending-note body.
func (g *Generator) NoteContent(keyword, category string) string {
	sections := []string{
		fmt.Sprintf("大家好呀！今天给大家分享一篇关于%s的%s。", keyword, category),
		fmt.Sprintf("最近发现很多小伙伴都在问关于%s的问题，作为一个%s%s的人，我决定来分享一下我的心得体会。", keyword, g.Experience(), keyword),
		g.Intro(keyword, category),
		g.MainPoint(keyword, category, 1),
		g.MainPoint(keyword, category, 2),
		g.MainPoint(keyword, category, 3),
		g.Conclusion(keyword, category),
		"如果你也喜欢这篇内容，别忘了点赞收藏加关注哦！你们的支持是我持续创作的动力！",
		"有什么想了解的，可以在评论区告诉我，我会尽快回复大家～",
	}
	return strings.Join(sections, "\n\n")
}

// NoteTags builds a trending-note tag set: the fixed base tags plus 3-5
// additional tags drawn dedup-checked from the generic pool.
func (g *Generator) NoteTags(keyword, category string) []string {
	return g.buildTags(keyword, category, drawSpec{pool: additionalTags, min: 3, max: 5})
}

// KeyFindings renders the four analysis finding lines. The template family
// branches on the category substring; each line carries randomized numeric
// ranges.
func (g *Generator) KeyFindings(keyword, category string) []string {
	switch {
	case strings.Contains(category, "测评") || strings.Contains(category, "推荐"):
		return []string{
			fmt.Sprintf("标题多采用“%s必入”、“拯救%s”等吸引眼球的表达", keyword, keyword),
			fmt.Sprintf("图片以产品实拍+使用效果对比为主，平均%d-%d张图片", g.intn(5, 7), g.intn(7, 9)),
			"文案结构通常为：痛点描述→产品介绍→使用体验→效果展示→总结推荐",
			fmt.Sprintf("高互动笔记平均字数在%d-%d字之间", g.intn(800, 1100), g.intn(1100, 1400)),
		}
	case strings.Contains(category, "教程") || strings.Contains(category, "技巧"):
		return []string{
			fmt.Sprintf("标题多采用数字列表形式，如“%d个%s小技巧”", g.intn(5, 10), keyword),
			fmt.Sprintf("图片以步骤展示为主，每个步骤配1-2张图片，总计%d-%d张", g.intn(6, 9), g.intn(9, 12)),
			"文案结构通常为：问题引入→方法列举→步骤详解→效果展示→经验总结",
			fmt.Sprintf("高互动笔记多使用序号和小标题，增强可读性，平均字数%d-%d字", g.intn(900, 1200), g.intn(1200, 1500)),
		}
	case strings.Contains(category, "分享") || strings.Contains(category, "心得"):
		return []string{
			fmt.Sprintf("标题多采用个人经历+发现的形式，如“%s我的%s心得”", g.TimeFrame(), keyword),
			fmt.Sprintf("图片以真实场景和个人使用为主，平均%d-%d张图片", g.intn(4, 6), g.intn(6, 8)),
			"文案结构通常为：个人经历→问题描述→解决方案→变化过程→心得体会",
			fmt.Sprintf("高互动笔记语言风格亲切自然，多使用第一人称，平均字数%d-%d字", g.intn(700, 1000), g.intn(1000, 1300)),
		}
	default:
		return []string{
			"标题多采用疑问句或感叹句，增强互动性和吸引力",
			fmt.Sprintf("图片数量平均为%d张，多采用高清实拍图", g.intn(5, 8)),
			"文案结构清晰，段落分明，通常包含引言、主体、总结三部分",
			"高互动笔记多在文末添加互动引导，如提问或号召行动",
		}
	}
}
