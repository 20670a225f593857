package conversation

import (
	"fmt"
	"strings"

	"rednote-trend-be/pkg/store"
)

// Canned stage replies. The conversation is fully scripted; only the
// interpolated request fields and generated results vary.

const greetingReply = `你好！我是小红书爆款内容制作助手。我可以帮你收集小红书近1个月的爆款笔记，分析其元素特点，并根据分析结果制作类似的爆款内容及图片。

你可以告诉我你感兴趣的关键词和类目，我会为你找到相关的爆款内容并进行分析。需要我为你制作什么类型的小红书爆款内容呢？`

const askBothReply = `为了帮你找到最相关的爆款内容，我需要了解一些更具体的信息：

1. 你想关注哪些具体关键词？例如：保湿、美白、抗衰老、敏感肌护理等。
2. 你希望内容属于哪个具体类目？例如：产品测评、使用心得、护肤技巧、成分分析等。

请告诉我你的具体需求，这样我能为你找到最匹配的爆款内容。`

const retreatReply = `没问题，让我们重新确认你的需求。

请告诉我你感兴趣的关键词和类目，例如"敏感肌保湿产品测评"或"复古风穿搭分享"等。`

const feedbackRequestReply = `非常高兴你喜欢这些内容！为了帮我提升服务质量，你能告诉我：

1. 这次生成的内容符合你的预期吗？
2. 有哪些方面你认为可以改进？
3. 下次你可能会需要什么类型的内容？

你的反馈对我非常宝贵，会帮助我为你提供更好的服务。`

const idleReply = `很高兴能帮到你！如果你有新的需求，或者想要制作其他类型的小红书爆款内容，随时告诉我。

我随时准备为你提供帮助！`

const createDoneReply = `内容和配图生成完成，正在准备下载链接...`

const analyzeDoneReply = `分析完成，已识别出爆款内容的关键特点和模式。

正在根据分析结果生成内容和配图...`

const stepFailedReply = `抱歉，处理过程中出现了临时问题，这一步没有完成。请再发一条消息，我会重新尝试。`

func confirmInfoReply(keyword, category string) string {
	return fmt.Sprintf(`非常好！让我确认一下你的需求：

- 关键词：%s
- 类目：%s

我将基于这些信息，为你收集小红书近1个月内关于"%s"的%s类爆款笔记，分析其特点，并制作类似内容。

这些信息是否准确？如果准确，我将立即开始收集和分析；如果需要调整，请告诉我。`, keyword, category, keyword, category)
}

func askCategoryReply(keyword string) string {
	return fmt.Sprintf(`我注意到你对"%s"感兴趣，这是个很好的关键词！

为了帮你找到最相关的爆款内容，我还需要知道你希望的内容类目。例如：产品测评、使用心得、护肤技巧、穿搭分享、旅行攻略等。

请告诉我你希望的具体类目，这样我能为你找到最匹配的爆款内容。`, keyword)
}

func askKeywordReply(category string) string {
	return fmt.Sprintf(`我了解到你对%s类内容感兴趣，这是个很受欢迎的类目！

为了帮你找到最相关的爆款内容，我还需要知道你感兴趣的具体关键词。例如：如果是护肤类，可以是"敏感肌"、"美白"、"抗衰老"等。

请告诉我你感兴趣的具体关键词，这样我能为你找到最匹配的爆款内容。`, category)
}

func processingStartReply(keyword, category string) string {
	return fmt.Sprintf(`好的，我正在为你收集和分析小红书上关于"%s"的%s类爆款笔记。这个过程包括以下几个步骤：

1. 收集近1个月内的爆款笔记 [进行中...]
2. 分析笔记的文案和图片特点
3. 生成类似的内容和配图
4. 准备下载链接

整个过程预计需要几分钟时间，请稍候。我会及时向你更新进度。`, keyword, category)
}

func collectDoneReply(totalFound, selectedCount int) string {
	return fmt.Sprintf(`已完成爆款笔记收集，找到了%d篇相关笔记，筛选出%d篇高质量爆款进行分析。

正在分析内容特点...`, totalFound, selectedCount)
}

func closingReply(feedbackFragment string) string {
	return fmt.Sprintf(`感谢你的反馈！%s

你的小红书爆款内容已经准备就绪，随时可以通过之前提供的链接下载使用。如果你有任何问题，或者需要制作其他类型的爆款内容，随时告诉我，我很乐意继续为你服务！

祝你的小红书内容获得高互动！还有其他我能帮到你的吗？`, feedbackFragment)
}

// resultsReply renders the full results message: findings, title, a 200-rune
// body excerpt and the download link.
func resultsReply(s *store.Session) string {
	findings := s.Analysis.KeyFindings
	excerpt := []rune(s.Creation.Content)
	if len(excerpt) > 200 {
		excerpt = excerpt[:200]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "好消息！我已经完成了关于\"%s\"的%s内容制作。以下是处理结果：\n\n",
		s.Request.Keyword, s.Request.Category)
	fmt.Fprintf(&b, "【分析发现】\n我分析了近1个月内%d篇相关爆款笔记，发现以下特点：\n", s.Collected.SelectedCount)
	for i, f := range findings {
		fmt.Fprintf(&b, "%d. %s\n", i+1, f)
	}
	fmt.Fprintf(&b, "\n【生成内容预览】\n标题：《%s》\n\n", s.Creation.Title)
	fmt.Fprintf(&b, "内容摘要：\n\"%s...\"\n\n", string(excerpt))
	b.WriteString("[图片预览]\n\n")
	fmt.Fprintf(&b, "【下载链接】\n完整内容包（含%d张配图+完整文案）：[点击下载](%s)\n\n",
		len(s.Creation.Images), s.Creation.DownloadLink)
	b.WriteString("你可以直接使用这些内容发布到小红书，或根据需要进行个性化调整。内容已经根据小红书爆款特点优化，有较高的互动潜力。\n\n")
	b.WriteString("需要我为你解释任何部分，或者你对内容有任何调整建议吗？")
	return b.String()
}
