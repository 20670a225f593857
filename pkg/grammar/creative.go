package grammar

import (
	"fmt"
	"strings"
)

// Creative templates produce the final authored piece.

// CreativeTitle picks one of five title templates uniformly at random.
func (g *Generator) CreativeTitle(keyword, category string) string {
	templates := []string{
		fmt.Sprintf("%s救星！这%d款%s让你告别%s", keyword, g.intn(3, 8), category, g.Problem(keyword)),
		fmt.Sprintf("我的%s%s心得：从%s到%s只需%d天", keyword, category, g.Problem(keyword), g.Solution(keyword), g.intn(1, 11)),
		fmt.Sprintf("%s%s%s指南，%s", g.Prefix(), keyword, category, g.Suffix()),
		fmt.Sprintf("%d个%s%s秘诀，第%d个太惊艳了！", g.intn(1, 11), keyword, category, g.intn(3, 8)),
		fmt.Sprintf("%s%s%s？%s", g.Question(), keyword, category, g.Answer()),
	}
	return pick(g.r, templates)
}

// CreativeContent assembles the authored body: intro, four labeled main point
// sections and a conclusion.
func (g *Generator) CreativeContent(keyword, category string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "大家好！今天给大家带来一篇关于%s的%s分享。\n\n", keyword, category)
	b.WriteString(g.Intro(keyword, category))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "作为一个%s%s的人，我尝试了市面上各种各样的方法和产品，今天就来分享一下我的心得体会，希望能帮到同样被%s困扰的小伙伴们。\n\n",
		g.Experience(), keyword, g.Problem(keyword))

	for i := 1; i <= 4; i++ {
		fmt.Fprintf(&b, "【%s】\n%s\n\n", g.MainPointTitle(i), g.MainPoint(keyword, category, i))
	}

	b.WriteString(g.Conclusion(keyword, category))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "以上就是我的%s%s分享，希望对你有所帮助！如果你也有好的经验或者建议，欢迎在评论区留言交流哦～\n\n", keyword, category)
	fmt.Fprintf(&b, "记得点赞收藏加关注，我会持续分享更多%s相关的内容！", keyword)

	return b.String()
}

// CreativeTags builds the authored piece's tag set: base tags plus 2-3
// emotional and 1-2 demographic tags, dedup-checked.
func (g *Generator) CreativeTags(keyword, category string) []string {
	return g.buildTags(keyword, category,
		drawSpec{pool: emotionalTags, min: 2, max: 3},
		drawSpec{pool: demographicTags, min: 1, max: 2},
	)
}

// drawSpec describes one themed pool draw: between min and max attempts,
// inclusive, each adding the picked tag only if unseen.
type drawSpec struct {
	pool []string
	min  int
	max  int
}

// buildTags unions the fixed base tag set with draws from the given pools.
// Duplicates are never appended, so the result is a set in insertion order.
func (g *Generator) buildTags(keyword, category string, draws ...drawSpec) []string {
	tags := []string{keyword, category, "好物分享", "经验分享", "达人推荐"}
	seen := make(map[string]bool, len(tags))
	out := tags[:0]
	for _, t := range tags {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}

	for _, d := range draws {
		count := g.intn(d.min, d.max+1)
		for i := 0; i < count; i++ {
			tag := pick(g.r, d.pool)
			if seen[tag] {
				continue
			}
			seen[tag] = true
			out = append(out, tag)
		}
	}
	return out
}
