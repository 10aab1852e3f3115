package encounters

// Each branch has its own candidate list; lists are never shared.
var secretOpenings = []string{
	"I know what you did. And I'm not the only one.",
	"Remember me? Because I remember you.",
	"Should I tell them, or will you?",
	"Funny seeing you here, after everything.",
}

var projectileOpenings = []string{
	"This is for the factory closing!",
	"Catch this, you phony!",
	"Special delivery from the forgotten voters!",
	"You want a photo op? Here's one!",
}

var intoxicatedOpenings = []string{
	"Heyyy, it's the TV guy! You're shorter on TV.",
	"I've got a question. Wait. I had a question.",
	"Lemme buy you a beer. No, YOU buy ME a beer.",
	"I love you, man. I don't vote, but I love you.",
}

var signOpenings = []string{
	"Read the sign! READ THE SIGN!",
	"I made this sign at two in the morning, so you'd better look at it.",
	"My sign says it all, doesn't it?",
}

var supporterOpenings = []string{
	"I've been with you since day one!",
	"My whole family is voting for you!",
	"You're the only one who gets it!",
	"Can I get a picture? My mom will never believe this.",
}

var undecidedOpenings = []string{
	"I'm still making up my mind. Convince me.",
	"What are you going to do about the potholes on Route 9?",
	"My rent went up again. What's your plan?",
	"I voted for the other guy last time. Why should I switch?",
}

var hostileOpenings = []string{
	"You've got some nerve showing your face here!",
	"Liar! Everything you say is a lie!",
	"You people only come around when you want something.",
	"Go back where you came from!",
}

var fallbackOpenings = []string{
	"Oh. Hello.",
	"Nice day for it, I suppose.",
}

var childQuestions = []string{
	"Why do grown-ups fight so much on TV?",
	"Is it true you don't like dogs?",
	"My dad says you're a crook. Are you a crook?",
	"What's your favorite dinosaur?",
	"Why can't my grandma afford her medicine?",
	"Do you have to do your homework too?",
}

var projectileContexts = []string{
	"%s winds up from the second row, %s in hand.",
	"Something sails out of the crowd. %[1]s has let fly with the %[2]s.",
	"%s reaches into a grocery bag. Out comes the %s.",
}
